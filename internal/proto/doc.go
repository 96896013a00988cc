// Package pb holds the wire contract of garden.v1.GardenService, generated
// from garden.proto.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative garden.proto
