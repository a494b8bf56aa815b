package server

//go:generate protoc --go_out=../.. --go_opt=module=github.com/danielpatrickdp/value-trace/go-engine --go-grpc_out=../.. --go-grpc_opt=module=github.com/danielpatrickdp/value-trace/go-engine -I ../../proto ../../proto/provenance.proto

import (
	"context"
	"errors"
	"net"

	pb "github.com/danielpatrickdp/value-trace/go-engine/gen/provenance"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/oplog"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/traverse"
	"github.com/danielpatrickdp/value-trace/go-engine/internal/valuemap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// #region server-struct

// Server exposes the operation log and the traversal engine over
// gRPC. Writes go through the async batching writer; a record enqueued
// by AppendRecords may stay invisible to readers for the flush window.
type Server struct {
	pb.UnimplementedProvenanceServiceServer

	store  *oplog.Store
	writer *oplog.Writer
	engine *traverse.Engine
}

// New wires a server over a store, its writer, and a traversal engine.
func New(store *oplog.Store, writer *oplog.Writer, engine *traverse.Engine) *Server {
	return &Server{store: store, writer: writer, engine: engine}
}

// Serve registers the service and blocks on the listener.
func (s *Server) Serve(lis net.Listener) error {
	g := grpc.NewServer()
	pb.RegisterProvenanceServiceServer(g, s)
	return g.Serve(lis)
}

// #endregion server-struct

// #region append

// AppendRecords enqueues a batch for asynchronous persistence and
// acknowledges acceptance, not durability.
func (s *Server) AppendRecords(_ context.Context, req *pb.AppendRecordsRequest) (*pb.AppendRecordsResponse, error) {
	entries := make([]oplog.Entry, 0, len(req.Records))
	for _, r := range req.Records {
		if r.Id == "" {
			return nil, status.Error(codes.InvalidArgument, "record with empty id")
		}
		entries = append(entries, oplog.Entry{ID: r.Id, Record: r.Record})
	}
	s.writer.EnqueueBatch(entries)
	return &pb.AppendRecordsResponse{Accepted: int32(len(entries))}, nil
}

// #endregion append

// #region read

// HasRecord reports whether an id is visible in the log yet.
func (s *Server) HasRecord(ctx context.Context, req *pb.HasRecordRequest) (*pb.HasRecordResponse, error) {
	has, err := s.store.Has(ctx, req.Id)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.HasRecordResponse{Has: has}, nil
}

// GetRecord returns the serialized origin for an id, without waiting:
// not-yet-flushed records come back found=false.
func (s *Server) GetRecord(ctx context.Context, req *pb.GetRecordRequest) (*pb.GetRecordResponse, error) {
	record, err := s.store.Get(ctx, req.Id)
	if errors.Is(err, oplog.ErrNotFound) {
		return &pb.GetRecordResponse{Found: false}, nil
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetRecordResponse{Found: true, Record: record}, nil
}

// #endregion read

// #region traverse

// Traverse walks the causal chain for one character. Failures that
// leave a usable partial chain are reported in-band via terminal and
// error, never as a bare RPC error that drops the steps.
func (s *Server) Traverse(ctx context.Context, req *pb.TraverseRequest) (*pb.TraverseResponse, error) {
	res, err := s.engine.Traverse(ctx, req.StartId, int(req.CharIndex))

	resp := &pb.TraverseResponse{Terminal: "complete"}
	for _, step := range res.Steps {
		pbStep := &pb.TraceStep{
			OriginId:      step.Origin.ID,
			Action:        step.Origin.Action.String(),
			ActionDetails: step.Origin.ActionDetails,
			Value:         step.Origin.Value,
			CharIndex:     int32(step.CharIndex),
		}
		if step.Location != nil {
			pbStep.Location = &pb.SourceLocation{
				File:   step.Location.File,
				Line:   int32(step.Location.Line),
				Column: int32(step.Location.Column),
			}
		}
		resp.Steps = append(resp.Steps, pbStep)
	}

	switch {
	case err == nil:
	case errors.Is(err, traverse.ErrWaitTimeout):
		resp.Terminal = "wait_timeout"
		resp.Error = err.Error()
	case errors.Is(err, traverse.ErrRecordNotFound):
		resp.Terminal = "missing_record"
		resp.Error = err.Error()
	case errors.Is(err, valuemap.ErrOffsetOutOfRange):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, status.FromContextError(err).Err()
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

// #endregion traverse
