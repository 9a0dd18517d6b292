package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/avstrong/hotelres/internal/logger"
	"github.com/avstrong/hotelres/internal/obs"
	"github.com/avstrong/hotelres/internal/reservation"
)

type Server struct {
	srv      *http.Server
	router   *http.ServeMux
	l        *logger.Logger
	conf     Conf
	rManager *reservation.Manager
	metrics  *obs.Metrics
	throttle func(http.Handler) http.Handler
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	ConcurrencyLimit  int
	MaxBodyBytes      int64
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, reservationManager *reservation.Manager, metrics *obs.Metrics) (*Server, error) {
	mux := http.NewServeMux()

	server := &Server{
		router:   mux,
		l:        conf.L,
		conf:     conf,
		rManager: reservationManager,
		metrics:  metrics,
		throttle: middleware.Throttle(conf.ConcurrencyLimit),
	}

	server.addRoutes(mux)

	//nolint:exhaustruct
	server.srv = &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           server.Handler(),
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

// Handler is the router wrapped in the server-wide middlewares. Throttling
// and timeouts are applied per route, inside the access log and metrics.
func (s *Server) Handler() http.Handler {
	return s.applyMiddlewares(
		s.router,
		s.requestIDMiddleware(),
		s.realIPMiddleware(),
	)
}
