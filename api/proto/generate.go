//go:generate protoc --go_out=../.. --go_opt=module=taskmanager --go-grpc_out=../.. --go-grpc_opt=module=taskmanager events/v1/events.proto

// Package proto anchors the protoc invocation for the event-ingest API.
// Generated code lands under events/v1/generated.
package proto
