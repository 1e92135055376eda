package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/terrain-synth/internal/heightfield"
	"github.com/vovakirdan/terrain-synth/internal/telemetry"
)

// ErrRebakeDisabled is returned for rebake requests when no shape is configured.
var ErrRebakeDisabled = errors.New("rebake is disabled")

// client is one websocket connection. Up to MaxInFlight requests run
// concurrently; writes are serialized by mu.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	s.logger.Info("client connected", "remote", remote)
	defer s.logger.Info("client disconnected", "remote", remote)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := &client{conn: conn}
	var inflight errgroup.Group
	inflight.SetLimit(s.config.MaxInFlight)
	defer inflight.Wait()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket read ended", "remote", remote, "error", err)
			}
			cancel()
			return
		}

		// Blocks the read loop while the connection is at its limit.
		inflight.Go(func() error {
			resp := s.dispatch(ctx, req)
			if err := c.send(resp); err != nil {
				s.logger.Debug("websocket write failed", "remote", remote, "error", err)
			}
			return nil
		})
	}
}

// dispatch handles one request and returns the response to send.
func (s *Server) dispatch(ctx context.Context, req Request) any {
	ctx, span := telemetry.Tracer("server").Start(ctx, "server."+req.Type)
	defer span.End()
	span.SetAttributes(attribute.String("server.request_id", req.ID))

	var (
		resp any
		err  error
	)
	switch req.Type {
	case TypeSample:
		resp = s.sample(req)
	case TypeGrid:
		resp, err = s.grid(ctx, req)
	case TypeRebake:
		resp, err = s.rebake(ctx, req)
	default:
		err = fmt.Errorf("unknown message type %q", req.Type)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("request failed", "type", req.Type, "error", err)
		return ErrorResponse{Type: TypeError, ID: req.ID, Error: err.Error()}
	}
	return resp
}

func (s *Server) sample(req Request) SampleResponse {
	return SampleResponse{
		Type:  TypeSample,
		ID:    req.ID,
		X:     req.X,
		Y:     req.Y,
		Value: s.synth.Sample(s.src, req.X, req.Y),
	}
}

func (s *Server) grid(ctx context.Context, req Request) (GridResponse, error) {
	g := s.config.Grid
	if req.Width != 0 {
		g.Width = req.Width
	}
	if req.Length != 0 {
		g.Length = req.Length
	}
	if req.SegmentsX != 0 {
		g.SegmentsX = req.SegmentsX
	}
	if req.SegmentsY != 0 {
		g.SegmentsY = req.SegmentsY
	}
	if g.SegmentsX > s.config.MaxSegments || g.SegmentsY > s.config.MaxSegments {
		return GridResponse{}, fmt.Errorf("grid of %dx%d segments exceeds limit %d", g.SegmentsX, g.SegmentsY, s.config.MaxSegments)
	}

	hg, err := heightfield.SampleGrid(ctx, s.synth.Snapshot(), s.src, g, s.config.Workers)
	if err != nil {
		return GridResponse{}, err
	}

	lo, hi := hg.MinMax()
	return GridResponse{
		Type:    TypeGrid,
		ID:      req.ID,
		Cols:    hg.Cols,
		Rows:    hg.Rows,
		Heights: hg.Heights,
		Min:     lo,
		Max:     hi,
	}, nil
}

// rebake replaces the served layers. Other connections keep sampling the
// previous snapshot until the bake completes.
func (s *Server) rebake(ctx context.Context, req Request) (BakedResponse, error) {
	if s.config.Shape == nil {
		return BakedResponse{}, ErrRebakeDisabled
	}

	target := s.config.Layers
	if req.Layers != nil {
		target = *req.Layers
	}

	s.bakeMu.Lock()
	defer s.bakeMu.Unlock()

	if req.Seed != nil {
		s.rng = heightfield.NewRandSource(*req.Seed)
		s.synth.Reseed(s.rng)
	}

	shape := s.config.Shape(s.rng)
	if err := s.synth.Bake(ctx, shape, target, s.config.Explicit...); err != nil {
		return BakedResponse{}, err
	}

	n := len(s.synth.Layers())
	s.logger.Info("rebaked", "layers", n, "seeded", req.Seed != nil)
	return BakedResponse{Type: TypeBaked, ID: req.ID, Layers: n}, nil
}
