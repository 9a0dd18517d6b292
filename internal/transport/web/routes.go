package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/avstrong/hotelres/internal/reservation"
)

type quotesResponse struct {
	CustomerType reservation.CustomerType `json:"customer_type"`
	Nights       int                      `json:"nights"`
	Quotes       []reservation.Quote      `json:"quotes"`
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit))

			return nil, false
		}

		s.writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))

		return nil, false
	}

	// Past the deadline the timeout middleware answers.
	if r.Context().Err() != nil {
		return nil, false
	}

	return body, true
}

// writeReservationError maps parser and selection failures. It reports false
// for errors it does not know.
func (s *Server) writeReservationError(w http.ResponseWriter, err error) bool {
	if parseErr := reservation.IsParseError(err); parseErr != nil {
		if s.metrics != nil {
			s.metrics.IncParseFailure(parseFailureKind(parseErr))
		}

		s.writeError(w, http.StatusBadRequest, parseErr.Error())

		return true
	}

	if errors.Is(err, reservation.ErrNoHotels) {
		s.writeError(w, http.StatusNotFound, err.Error())

		return true
	}

	return false
}

func parseFailureKind(err *reservation.ParseError) string {
	switch {
	case errors.Is(err, reservation.ErrInvalidFormat):
		return "format"
	case errors.Is(err, reservation.ErrInvalidCustomerType):
		return "customer_type"
	case errors.Is(err, reservation.ErrInvalidDate):
		return "date"
	default:
		return "unknown"
	}
}

func (s *Server) cheapestHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	name, err := s.rManager.Cheapest(r.Context(), string(body))
	if s.writeReservationError(w, err) {
		return
	}

	if err != nil {
		s.l.LogErrorf("Could not select cheapest hotel: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	if s.metrics != nil {
		s.metrics.IncSelection(name)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err = io.WriteString(w, name); err != nil {
		s.l.LogErrorf("Could not write cheapest hotel: %v", err.Error())
	}
}

func (s *Server) quotesHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	req, quotes, err := s.rManager.Quotes(r.Context(), string(body))
	if s.writeReservationError(w, err) {
		return
	}

	if err != nil {
		s.l.LogErrorf("Could not quote hotels: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, quotesResponse{
		CustomerType: req.CustomerType,
		Nights:       req.Nights(),
		Quotes:       quotes,
	})
}

func (s *Server) listHandler(w http.ResponseWriter, r *http.Request) {
	hotels, err := s.rManager.Hotels(r.Context())
	if err != nil {
		s.l.LogErrorf("Could not list hotels: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, hotels)
}

func (s *Server) hotelHandler(w http.ResponseWriter, r *http.Request) {
	hotel, err := s.rManager.Hotel(r.Context(), r.PathValue("name"))
	if errors.Is(err, reservation.ErrHotelNotFound) {
		s.writeError(w, http.StatusNotFound, err.Error())

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not get hotel: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, hotel)
}

func (s *Server) addHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var hotel reservation.Hotel

	if err := json.Unmarshal(body, &hotel); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("decode hotel: %v", err))

		return
	}

	err := s.rManager.AddHotel(r.Context(), hotel)
	if inputErr := reservation.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hotel", Fields: inputErr.Fields()})

		return
	}

	if errors.Is(err, reservation.ErrHotelExists) {
		s.writeError(w, http.StatusConflict, err.Error())

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not add hotel: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, hotel)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handle(r *http.ServeMux, method, path string, h http.HandlerFunc) {
	r.Handle(
		fmt.Sprintf("%s %s", method, path),
		s.applyMiddlewares(
			h,
			s.timeoutMiddleware(),
			s.throttleMiddleware(),
			s.recoverMiddleware(),
			s.metricsMiddleware(path),
			s.loggerMiddleware(),
		),
	)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	s.handle(r, http.MethodGet, "/list", s.listHandler)
	s.handle(r, http.MethodGet, "/hotels/{name}", s.hotelHandler)
	s.handle(r, http.MethodPost, "/add", s.addHandler)
	s.handle(r, http.MethodPost, "/cheapest", s.cheapestHandler)
	s.handle(r, http.MethodPost, "/quotes", s.quotesHandler)
	s.handle(r, http.MethodGet, s.conf.LivenessEndpoint, s.livenessHandler)

	if s.metrics != nil {
		r.Handle("GET /metrics", s.metrics.Handler())
	}
}
