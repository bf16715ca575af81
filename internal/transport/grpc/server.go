package grpc_server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/waste3d/mindwell-api/internal/application/usecase"
	"github.com/waste3d/mindwell-api/internal/dashboard"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type ActionRecorder interface {
	RecordAction(ctx context.Context, userID uuid.UUID, actionType string, xp *int) (*usecase.ActionResult, error)
}

type StatsReader interface {
	Stats(ctx context.Context, userID uuid.UUID) (dashboard.Stats, error)
}

type ProgressServer struct {
	actions ActionRecorder
	stats   StatsReader
}

func NewProgressServer(actions ActionRecorder, stats StatsReader) *ProgressServer {
	return &ProgressServer{actions: actions, stats: stats}
}

// RecordAction expects {user_id, type, xp?}.
func (s *ProgressServer) RecordAction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	uid, err := userID(req)
	if err != nil {
		return nil, err
	}

	fields := req.GetFields()
	var xp *int
	if v, ok := fields["xp"]; ok {
		n := v.GetNumberValue()
		if n != math.Trunc(n) {
			return nil, status.Error(codes.InvalidArgument, "xp must be an integer")
		}
		amount := int(n)
		xp = &amount
	}

	res, err := s.actions.RecordAction(ctx, uid, fields["type"].GetStringValue(), xp)
	if err != nil {
		return nil, toStatus(err)
	}

	unlocked := make([]interface{}, 0, len(res.UnlockedAchievements))
	for _, name := range res.UnlockedAchievements {
		unlocked = append(unlocked, name)
	}

	return structpb.NewStruct(map[string]interface{}{
		"new_level":             res.NewLevel,
		"new_xp":                res.NewXP,
		"levels_gained":         res.LevelsGained,
		"unlocked_achievements": unlocked,
	})
}

// GetDashboardStats returns the same document as the REST stats endpoint.
func (s *ProgressServer) GetDashboardStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	uid, err := userID(req)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.Stats(ctx, uid)
	if err != nil {
		return nil, toStatus(err)
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode stats")
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, status.Error(codes.Internal, "failed to encode stats")
	}
	return structpb.NewStruct(doc)
}

func userID(req *structpb.Struct) (uuid.UUID, error) {
	uid, err := uuid.Parse(req.GetFields()["user_id"].GetStringValue())
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid user ID: %v", err)
	}
	return uid, nil
}

func toStatus(err error) error {
	switch {
	case domain.IsValidation(err) && !errors.Is(err, domain.ErrConflict):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// UnaryLogger logs every call with its status code and duration.
func UnaryLogger(log *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		entry := log.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start).Seconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("grpc call failed")
		} else {
			entry.Debug("grpc call")
		}
		return resp, err
	}
}

// NewServer wires the progress service, health checks and reflection.
func NewServer(log *logrus.Logger, progress ProgressServiceServer) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(log)))
	RegisterProgressServiceServer(srv, progress)

	hs := health.NewServer()
	hs.SetServingStatus(ProgressServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	reflection.Register(srv)
	return srv, hs
}
