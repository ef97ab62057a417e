// Package proto holds the gRPC service descriptor of the shared barcode list.
//
// The service reuses the well-known protobuf wrapper messages instead of
// generated ones: the list travels as the same JSON array the HTTP endpoint
// serves, wrapped in a BytesValue.
//
//	service BarcodeList {
//	  rpc Get(google.protobuf.Empty) returns (google.protobuf.BytesValue);
//	  rpc Replace(google.protobuf.BytesValue) returns (google.protobuf.BoolValue);
//	  rpc Clear(google.protobuf.Empty) returns (google.protobuf.BoolValue);
//	  rpc Ping(google.protobuf.Empty) returns (google.protobuf.StringValue);
//	}
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "scankeeper.BarcodeList"

const (
	BarcodeList_Get_FullMethodName     = "/scankeeper.BarcodeList/Get"
	BarcodeList_Replace_FullMethodName = "/scankeeper.BarcodeList/Replace"
	BarcodeList_Clear_FullMethodName   = "/scankeeper.BarcodeList/Clear"
	BarcodeList_Ping_FullMethodName    = "/scankeeper.BarcodeList/Ping"
)

// BarcodeListClient is the client API for the BarcodeList service.
type BarcodeListClient interface {
	Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Replace(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type barcodeListClient struct {
	cc grpc.ClientConnInterface
}

func NewBarcodeListClient(cc grpc.ClientConnInterface) BarcodeListClient {
	return &barcodeListClient{cc}
}

func (c *barcodeListClient) Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, BarcodeList_Get_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *barcodeListClient) Replace(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, BarcodeList_Replace_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *barcodeListClient) Clear(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, BarcodeList_Clear_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *barcodeListClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, BarcodeList_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BarcodeListServer is the server API for the BarcodeList service.
type BarcodeListServer interface {
	Get(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	Replace(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BoolValue, error)
	Clear(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedBarcodeListServer can be embedded for forward compatibility.
type UnimplementedBarcodeListServer struct{}

func (UnimplementedBarcodeListServer) Get(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedBarcodeListServer) Replace(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Replace not implemented")
}
func (UnimplementedBarcodeListServer) Clear(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedBarcodeListServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}

func RegisterBarcodeListServer(s grpc.ServiceRegistrar, srv BarcodeListServer) {
	s.RegisterService(&BarcodeList_ServiceDesc, srv)
}

func _BarcodeList_Get_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BarcodeListServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BarcodeList_Get_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BarcodeListServer).Get(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BarcodeList_Replace_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BarcodeListServer).Replace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BarcodeList_Replace_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BarcodeListServer).Replace(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BarcodeList_Clear_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BarcodeListServer).Clear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BarcodeList_Clear_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BarcodeListServer).Clear(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BarcodeList_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BarcodeListServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BarcodeList_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BarcodeListServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// BarcodeList_ServiceDesc is the grpc.ServiceDesc for the BarcodeList service.
var BarcodeList_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BarcodeListServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: _BarcodeList_Get_Handler},
		{MethodName: "Replace", Handler: _BarcodeList_Replace_Handler},
		{MethodName: "Clear", Handler: _BarcodeList_Clear_Handler},
		{MethodName: "Ping", Handler: _BarcodeList_Ping_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scankeeper/barcode_list.proto",
}
