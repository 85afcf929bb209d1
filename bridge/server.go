package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fabceolin/airgap-json-formatter-sub000/debug"
	"github.com/fabceolin/airgap-json-formatter-sub000/format"
	"github.com/fabceolin/airgap-json-formatter-sub000/model"
	"github.com/fabceolin/airgap-json-formatter-sub000/query"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

type notice struct {
	format format.Format
	ev     model.Event
}

// Server dispatches requests to one model per format.
type Server struct {
	mu      sync.Mutex
	views   map[format.Format]model.View
	pending []notice
	log     *zap.Logger
}

type Option func(*Server)

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithModelOptions configures both models.
func WithModelOptions(opts ...model.Option) Option {
	return func(s *Server) {
		s.views = map[format.Format]model.View{
			format.JSONFormat: model.NewJSON(opts...),
			format.XMLFormat:  model.NewMarkup(opts...),
		}
	}
}

func NewServer(opts ...Option) *Server {
	s := &Server{log: zap.NewNop()}
	WithModelOptions()(s)
	for _, opt := range opts {
		opt(s)
	}
	for f, v := range s.views {
		v.Subscribe(func(ev model.Event) {
			if ev.Type == model.EventAboutToReset {
				return
			}
			s.pending = append(s.pending, notice{format: f, ev: ev})
		})
	}
	return s
}

// View returns the model serving format f.
func (s *Server) View(f format.Format) (model.View, error) {
	v, ok := s.views[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	return v, nil
}

// Serve handles requests on rwc until the peer disconnects or ctx is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, s.Handler(conn))
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-conn.Done():
	}
	err := conn.Err()
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
		return nil
	}
	return err
}

// ServeStdio serves on the process standard input and output.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.log.Info("serving on stdio")
	return s.Serve(ctx, &stdioReadWriteCloser{read: os.Stdin, write: os.Stdout})
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

// Handler returns the request handler. Notifications are sent on conn.
func (s *Server) Handler(conn jsonrpc2.Conn) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if debug.Bridge() {
			debug.Logf("bridge: %s %s\n", req.Method(), req.Params())
		}
		res, err := s.dispatch(req.Method(), req.Params())
		s.flush(ctx, conn)
		if err != nil {
			s.log.Debug("request failed", zap.String("method", req.Method()), zap.Error(err))
		} else {
			s.log.Debug("request", zap.String("method", req.Method()))
		}
		return reply(ctx, res, err)
	}
}

func (s *Server) flush(ctx context.Context, conn jsonrpc2.Conn) {
	pending := s.pending
	s.pending = nil
	for _, n := range pending {
		var (
			method string
			params any
		)
		switch n.ev.Type {
		case model.EventReset:
			method = NotifyReset
			params = ResetNotice{Format: n.format, TotalNodes: s.views[n.format].TotalNodeCount()}
		case model.EventLoadFailed:
			method = NotifyError
			params = ErrorNotice{Format: n.format, Diagnostic: Diagnostic(n.ev.Err)}
		default:
			continue
		}
		if err := conn.Notify(ctx, method, params); err != nil {
			s.log.Warn("notify failed", zap.String("method", method), zap.Error(err))
		}
	}
}

func decode(params []byte, v any) error {
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err)
	}
	return nil
}

func (s *Server) dispatch(method string, params []byte) (any, error) {
	switch method {
	case MethodLoad:
		var p LoadParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		res := &LoadResult{OK: v.Load([]byte(p.Text)), TotalNodes: v.TotalNodeCount()}
		if !res.OK {
			diag := Diagnostic(v.LastError())
			res.Diagnostic = &diag
			s.log.Info("load failed", zap.Stringer("format", p.Format), zap.String("error", v.LastError().Error()))
		}
		return res, nil
	case MethodClear:
		var p FormatParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		v.Clear()
		return struct{}{}, nil
	case MethodCount:
		var p FormatParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		return v.TotalNodeCount(), nil
	case MethodRoleNames:
		names := map[string]string{}
		for r, n := range model.RoleNames() {
			names[fmt.Sprint(int(r))] = n
		}
		return names, nil
	case MethodRows, MethodSerialize, MethodPath:
		var p IndexParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		switch method {
		case MethodRows:
			return v.Rows(p.Index)
		case MethodSerialize:
			return v.SerializeNode(p.Index)
		default:
			return v.GetPath(p.Index)
		}
	case MethodData:
		var p DataParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		for r, n := range model.RoleNames() {
			if n == p.Role {
				return v.Data(p.Index, r)
			}
		}
		return nil, fmt.Errorf("%w: unknown role %q", jsonrpc2.ErrInvalidParams, p.Role)
	case MethodLookup:
		var p LookupParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		return v.Lookup(p.Path)
	case MethodFind:
		var p FindParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		v, err := s.View(p.Format)
		if err != nil {
			return nil, err
		}
		ixs, err := query.Find(v, p.Expr)
		if err != nil {
			return nil, err
		}
		rows := make([]model.Row, 0, len(ixs))
		for _, ix := range ixs {
			row, err := v.Row(ix)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%w: %s", jsonrpc2.ErrMethodNotFound, method)
	}
}
