package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/dmitrijs2005/scankeeper/internal/netx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) Get(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	data, err := s.lists.Get(ctx, ownerFromPeer(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bytes(data), nil
}

func (s *GRPCServer) Replace(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.BoolValue, error) {
	if _, err := s.lists.Replace(ctx, ownerFromPeer(ctx), req.GetValue()); err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *GRPCServer) Clear(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	if err := s.lists.Clear(ctx, ownerFromPeer(ctx)); err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(true), nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}

// ownerFromPeer identifies the caller by the host of its peer address.
func ownerFromPeer(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	return netx.HostFromAddr(p.Addr.String())
}

func toStatus(err error) error {
	if errors.Is(err, common.ErrInvalidPayload) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
