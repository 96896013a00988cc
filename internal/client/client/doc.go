// Package client talks to the garden server.
//
// GRPCClient implements garden.Store and the remote half of sign-up, sign-in
// and sign-out. It attaches the access token to every call and, when the
// server reports "token expired", rotates the token pair once and retries.
// Rotated pairs are handed to the callback set with OnTokensRefreshed so the
// caller can persist them.
//
// gRPC status codes are mapped back to the sentinel errors of this package
// and of internal/common; the server's message is kept as the error text.
//
// InitDatabase opens the local SQLite session database and applies the
// embedded migrations.
package client
