package llm

import (
	"context"
	"fmt"

	pb "github.com/gianmatteo-arcana/engine-lever/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// GRPCClient is the production Client talking to the LLM sidecar.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.LLMServiceClient
}

// NewGRPCClient connects to the sidecar at addr.
// Plaintext by default; pass tls=true for transport security.
func NewGRPCClient(addr string, tls bool) (*GRPCClient, error) {
	creds := insecure.NewCredentials()
	if tls {
		creds = credentials.NewTLS(nil)
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	return &GRPCClient{
		conn:   conn,
		client: pb.NewLLMServiceClient(conn),
	}, nil
}

// Complete runs a single completion against the sidecar.
func (c *GRPCClient) Complete(ctx context.Context, req Request) (*Response, error) {
	pbReq := &pb.CompleteRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JsonMode:    req.JSONMode,
	}
	for _, m := range req.Messages {
		pbReq.Messages = append(pbReq.Messages, &pb.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.Complete(ctx, pbReq)
	if err != nil {
		return nil, mapGRPCError(err)
	}
	if resp.GetContent() == "" {
		return nil, ErrEmptyResponse
	}

	out := &Response{
		Content: resp.GetContent(),
		Model:   resp.GetModel(),
	}
	if u := resp.GetUsage(); u != nil {
		out.Usage = Usage{
			PromptTokens:     int(u.GetPromptTokens()),
			CompletionTokens: int(u.GetCompletionTokens()),
		}
	}
	return out, nil
}

// Close closes the gRPC connection
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// mapGRPCError translates transport status codes into the package sentinels
// the retry policy understands.
func mapGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrRateLimited, st.Message())
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrTimeout, st.Message())
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("llm call failed: %s", st.Message())
	}
}
