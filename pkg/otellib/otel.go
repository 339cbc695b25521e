package otellib

import (
	"context"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"time"
)

// InitOtel creates the tracer provider exporting to jaeger.
// When jaeger is disabled, spans are created but never exported.
func InitOtel(serviceName string, env string, conf config.JaegerConfig) (*tracesdk.TracerProvider, func()) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		attribute.String("environment", env),
	)

	options := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(res),
	}

	if conf.Enabled {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.URL)))
		if err != nil {
			panic(err)
		}
		options = append(options, tracesdk.WithBatcher(exporter))
	}

	tp := tracesdk.NewTracerProvider(options...)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := tp.Shutdown(ctx)
		if err != nil {
			fmt.Println("[ERROR] Shutdown tracer provider:", err)
		}
	}
}

// UnaryServerInterceptor starts a span for every gRPC call
func UnaryServerInterceptor(tp trace.TracerProvider) grpc.UnaryServerInterceptor {
	return otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(tp))
}
