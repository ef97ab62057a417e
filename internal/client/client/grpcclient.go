package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/common"
	pb "github.com/dmitrijs2005/scankeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.BarcodeListClient
}

// NewGRPCClient prepares a lazily-connecting client for endpointURL
// (host:port). Extra dial options are appended to the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBarcodeListClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Load(ctx context.Context) ([]barcodes.Record, error) {
	resp, err := s.client.Get(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return barcodes.DecodeList(resp.GetValue())
}

func (s *GRPCClient) Save(ctx context.Context, records []barcodes.Record) error {
	payload, err := barcodes.EncodeList(records)
	if err != nil {
		return err
	}

	resp, err := s.client.Replace(ctx, wrapperspb.Bytes(payload))
	if err != nil {
		return s.mapError(err)
	}
	if !resp.GetValue() {
		return fmt.Errorf("server did not confirm the write")
	}
	return nil
}

func (s *GRPCClient) Clear(ctx context.Context) error {
	resp, err := s.client.Clear(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.GetValue() {
		return fmt.Errorf("server did not confirm the clear")
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidPayload, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
