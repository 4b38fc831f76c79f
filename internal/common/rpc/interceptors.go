// Package rpc provides the client-side unary interceptors shared by the
// Delivery and OMS clients: tracing, access logging, request correlation
// and per-call bearer credentials.
package rpc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/parcelops/backoffice/internal/common/logger"
)

const (
	authorizationHeader = "authorization"
	requestIDHeader     = "x-request-id"
)

// UnaryAccessLogInterceptor logs method, duration and outcome of every
// outgoing call.
func UnaryAccessLogInterceptor(log logger.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		cost := time.Since(start)

		if log != nil {
			fields := map[string]interface{}{
				"method": method,
				"cost":   cost.String(),
			}
			if err != nil {
				fields["error"] = err.Error()
				log.WithFields(fields).Warn("grpc call failed")
			} else {
				log.WithFields(fields).Info("grpc call ok")
			}
		}

		return err
	}
}

// UnaryTracingInterceptor starts a client span per call and injects its
// context into the outgoing metadata so the remote service can continue
// the trace.
func UnaryTracingInterceptor(serviceName string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		tracer := opentracing.GlobalTracer()

		operation := method
		if strings.HasPrefix(operation, "/") {
			operation = operation[1:]
		}

		var spanOpts []opentracing.StartSpanOption
		if parent := opentracing.SpanFromContext(ctx); parent != nil {
			spanOpts = append(spanOpts, opentracing.ChildOf(parent.Context()))
		}
		span := tracer.StartSpan(operation, spanOpts...)
		defer span.Finish()

		ext.SpanKindRPCClient.Set(span)
		ext.Component.Set(span, "grpc")
		if serviceName != "" {
			span.SetTag("peer.service", serviceName)
		}

		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			md = md.Copy()
		} else {
			md = metadata.New(nil)
		}
		if err := tracer.Inject(span.Context(), opentracing.TextMap, metadataTextMapCarrier(md)); err == nil {
			ctx = metadata.NewOutgoingContext(ctx, md)
		}

		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("grpc.error", err.Error())
		}
		return err
	}
}

// UnaryRequestIDInterceptor attaches an x-request-id to every call so the
// back office can be correlated in the downstream services' logs. An ID
// already present in the outgoing metadata is kept.
func UnaryRequestIDInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if md, ok := metadata.FromOutgoingContext(ctx); !ok || len(md.Get(requestIDHeader)) == 0 {
			ctx = metadata.AppendToOutgoingContext(ctx, requestIDHeader, uuid.NewString())
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// UnaryAuthTokenInterceptor attaches the bearer token as authorization
// metadata on every call. The token is an opaque credential forwarded from
// the incoming admin request; this layer never parses it.
func UnaryAuthTokenInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if token != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, authorizationHeader, "Bearer "+token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// metadataTextMapCarrier adapts gRPC metadata to OpenTracing's TextMap.
type metadataTextMapCarrier metadata.MD

func (c metadataTextMapCarrier) ForeachKey(handler func(key, val string) error) error {
	md := metadata.MD(c)
	for k, vs := range md {
		for _, v := range vs {
			if err := handler(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c metadataTextMapCarrier) Set(key, val string) {
	md := metadata.MD(c)
	md.Set(key, val)
}
