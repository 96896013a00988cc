package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/dmitrijs2005/virtualgarden/internal/visual"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// renderPlant formats p as one list line.
func renderPlant(p garden.Plant) string {
	st := visual.ProjectPlant(p)

	var marks []string
	if st.Thirsty {
		marks = append(marks, "thirsty")
	}
	if st.Thriving {
		marks = append(marks, "thriving")
	}

	line := fmt.Sprintf("%s  %-8s  %-9s  %-8s  water %3d%%  happy %3d%%  at (%d,%d)",
		st.Symbol, shortID(p.ID), st.KindName, st.StageName, p.WaterLevel, p.Happiness, p.PositionX, p.PositionY)
	if len(marks) > 0 {
		line += "  " + strings.Join(marks, ", ")
	}
	return line
}

// renderDetail formats p the way the plant card shows it.
func renderDetail(p garden.Plant, now time.Time) string {
	st := visual.ProjectPlant(p)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n", st.Symbol, st.KindName, p.ID)
	fmt.Fprintf(&b, "  Growth:    %s (stage %d of %d)\n", st.StageName, p.GrowthStage, garden.MaxGrowthStage)
	fmt.Fprintf(&b, "  Water:     %d%%\n", p.WaterLevel)
	fmt.Fprintf(&b, "  Happiness: %d%%\n", p.Happiness)
	fmt.Fprintf(&b, "  Planted:   %s ago\n", ago(now, p.CreatedAt))
	fmt.Fprintf(&b, "  Watered:   %s ago\n", ago(now, p.LastWatered))
	switch {
	case !st.Healthy:
		b.WriteString("  Needs attention!\n")
	case st.Thriving:
		b.WriteString("  Thriving!\n")
	}
	return b.String()
}

func ago(now, t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "moments"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
