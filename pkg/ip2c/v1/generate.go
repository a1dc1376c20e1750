// Package ip2cv1 holds the generated protobuf and gRPC code for the
// ip2c.IpLookup service defined in proto/ip2c/v1/ip2c.proto.
package ip2cv1

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/TomasB/ip2country --go-grpc_out=../../.. --go-grpc_opt=module=github.com/TomasB/ip2country ip2c/v1/ip2c.proto
