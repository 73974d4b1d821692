// Package proto holds the generated protobuf messages and gRPC stubs of the
// edgesync.v1.EdgeSync service.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/edgesync --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/edgesync edgesync/v1/edgesync.proto
