// Package grpc serves the shared barcode list over gRPC with the same
// contract as the HTTP endpoint.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/scankeeper/internal/logging"
	pb "github.com/dmitrijs2005/scankeeper/internal/proto"
	"google.golang.org/grpc"
)

// ListService is what the handlers need from lists.Service.
type ListService interface {
	Get(ctx context.Context, owner string) ([]byte, error)
	Replace(ctx context.Context, owner string, body []byte) (int, error)
	Clear(ctx context.Context, owner string) error
}

type GRPCServer struct {
	pb.UnimplementedBarcodeListServer
	address string
	lists   ListService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, lists ListService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		lists:   lists,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run over an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	pb.RegisterBarcodeListServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
