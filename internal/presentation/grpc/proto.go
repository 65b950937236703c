package grpc

// proto.go defines the gRPC server interface derived from
// property/risk/v1/risk.proto. This file serves as a stand-in for
// buf-generated code; once `buf generate` is run, replace it with the
// generated package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RiskServiceServer is the server API for RiskService.
type RiskServiceServer interface {
	AssessProperty(context.Context, *AssessPropertyRequest) (*AssessPropertyResponse, error)
	mustEmbedUnimplementedRiskServiceServer()
}

// UnimplementedRiskServiceServer provides forward-compatible default
// implementations.
type UnimplementedRiskServiceServer struct{}

func (UnimplementedRiskServiceServer) AssessProperty(context.Context, *AssessPropertyRequest) (*AssessPropertyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessProperty not implemented")
}
func (UnimplementedRiskServiceServer) mustEmbedUnimplementedRiskServiceServer() {}

// RegisterRiskServiceServer registers the RiskServiceServer with the
// gRPC server.
func RegisterRiskServiceServer(s *grpclib.Server, srv RiskServiceServer) {
	s.RegisterService(&_RiskService_serviceDesc, srv)
}

var _RiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "property.risk.v1.RiskService",
	HandlerType: (*RiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AssessProperty", Handler: _RiskService_AssessProperty_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _RiskService_AssessProperty_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AssessPropertyRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(RiskServiceServer).AssessProperty(ctx, req)
}
