package grpc

// proto.go defines the gRPC server interface derived from
// telelink/analytics/v1/analytics.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/telelink/api/gen/go/telelink/analytics/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CustomerAnalyticsServer is the server API for CustomerAnalytics.
type CustomerAnalyticsServer interface {
	ScoreCustomer(context.Context, *ScoreCustomerRequest) (*ScoreCustomerResponse, error)
	GetPrediction(context.Context, *GetPredictionRequest) (*GetPredictionResponse, error)
	mustEmbedUnimplementedCustomerAnalyticsServer()
}

// UnimplementedCustomerAnalyticsServer provides forward-compatible default implementations.
type UnimplementedCustomerAnalyticsServer struct{}

func (UnimplementedCustomerAnalyticsServer) ScoreCustomer(context.Context, *ScoreCustomerRequest) (*ScoreCustomerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreCustomer not implemented")
}
func (UnimplementedCustomerAnalyticsServer) GetPrediction(context.Context, *GetPredictionRequest) (*GetPredictionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPrediction not implemented")
}
func (UnimplementedCustomerAnalyticsServer) mustEmbedUnimplementedCustomerAnalyticsServer() {}

// RegisterCustomerAnalyticsServer registers the CustomerAnalyticsServer with the gRPC server.
func RegisterCustomerAnalyticsServer(s *grpclib.Server, srv CustomerAnalyticsServer) {
	s.RegisterService(&_CustomerAnalytics_serviceDesc, srv)
}

var _CustomerAnalytics_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "telelink.analytics.v1.CustomerAnalytics",
	HandlerType: (*CustomerAnalyticsServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreCustomer", Handler: _CustomerAnalytics_ScoreCustomer_Handler},
		{MethodName: "GetPrediction", Handler: _CustomerAnalytics_GetPrediction_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _CustomerAnalytics_ScoreCustomer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreCustomerRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CustomerAnalyticsServer).ScoreCustomer(ctx, req)
}

func _CustomerAnalytics_GetPrediction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetPredictionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CustomerAnalyticsServer).GetPrediction(ctx, req)
}
