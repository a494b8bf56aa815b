package resolver

import (
	"context"
	"fmt"

	pb "github.com/danielpatrickdp/value-trace/go-engine/gen/provenance"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/origin"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// Client wraps the gRPC connection to the external sourcemap resolver
// service. It satisfies traverse.Resolver.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ResolverServiceClient
}
// #endregion client-struct

// #region constructor
// NewClient connects to the resolver gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewResolverServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.ResolverServiceClient) *Client {
	return &Client{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region resolve
// Resolve maps a recorded code position to original source. An RPC
// failure or an unresolved answer both come back as
// traverse.ErrUnavailable; the caller degrades the step, not the walk.
func (c *Client) Resolve(ctx context.Context, loc origin.CodeLocation) (traverse.SourceLocation, error) {
	resp, err := c.client.Resolve(ctx, &pb.ResolveRequest{
		File:   loc.File,
		Line:   int32(loc.Line),
		Column: int32(loc.Column),
	})
	if err != nil {
		return traverse.SourceLocation{}, fmt.Errorf("%w: resolve rpc: %v", traverse.ErrUnavailable, err)
	}
	if !resp.Resolved {
		return traverse.SourceLocation{}, fmt.Errorf("%w: %s:%d:%d",
			traverse.ErrUnavailable, loc.File, loc.Line, loc.Column)
	}
	return traverse.SourceLocation{
		File:   resp.File,
		Line:   int(resp.Line),
		Column: int(resp.Column),
	}, nil
}
// #endregion resolve
