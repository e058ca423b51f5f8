// Package proto holds the record store wire contract generated from
// roster.proto, plus conversions to the roster models.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative roster.proto
