package grpc

import (
	"context"

	ip2cv1 "github.com/TomasB/ip2country/pkg/ip2c/v1"
	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "ip2c.IpLookup"

// SendMethod is the full method name of the single lookup RPC.
const SendMethod = ip2cv1.IpLookup_Send_FullMethodName

// Register adds h to the gRPC server as the ip2c.IpLookup service.
func Register(s grpc.ServiceRegistrar, h *Handler) {
	ip2cv1.RegisterIpLookupServer(s, h)
}

// Client calls the ip2c.IpLookup service.
type Client struct {
	c ip2cv1.IpLookupClient
}

// NewClient returns a client using the given connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{c: ip2cv1.NewIpLookupClient(cc)}
}

// Send looks up ip remotely and returns its country code, or "" if unknown.
func (c *Client) Send(ctx context.Context, ip string, opts ...grpc.CallOption) (string, error) {
	resp, err := c.c.Send(ctx, &ip2cv1.LookupRequest{Ip: ip}, opts...)
	if err != nil {
		return "", err
	}
	return resp.GetCountry(), nil
}
