// Package sitv1 holds the generated update-frame types and the UpdateStream
// gRPC service. Run `make proto` after editing sit_events.proto.
package sitv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative sit_events.proto
