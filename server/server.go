// Package server exposes the avatar generator over HTTP.
//
// Routes:
//
//	GET /avatar/{seed}.svg   random avatar for the seed (complexity, shape, size)
//	GET /data/{seed}         avatar data for the seed (complexity, sep)
//	GET /render/{data}.svg   renders avatar data (shape, size, sep)
//
// The output only depends on the request, so every response is cacheable for a long time.
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/esimov/pixavatar"
	"github.com/gorilla/mux"
)

const svgContentType = "image/svg+xml"

// Options configures the defaults and limits of the served avatars.
type Options struct {
	Complexity int
	Size       int
	MaxSize    int
	Shape      string
	// CacheAge is the max-age of the Cache-Control header in seconds.
	CacheAge int
	// Logger receives one line per failed request. Defaults to log.Default().
	Logger *log.Logger
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Complexity: pixavatar.DefaultComplexity,
		Size:       pixavatar.DefaultSize,
		MaxSize:    4096,
		Shape:      string(pixavatar.SquareShape),
		CacheAge:   7776000,
	}
}

type server struct {
	opts Options
}

// New returns the HTTP handler serving the avatars.
func New(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &server{opts: opts}

	r := mux.NewRouter()
	getters := r.Methods("GET").Subrouter()
	getters.HandleFunc("/avatar/{seed}.svg", s.serveAvatar)
	getters.HandleFunc("/data/{seed}", s.serveData)
	getters.HandleFunc("/render/{data}.svg", s.serveRender)

	return r
}

// badRequest signals an invalid query parameter.
type badRequest struct {
	param string
	err   error
}

func (e *badRequest) Error() string {
	return fmt.Sprintf("invalid %s parameter: %v", e.param, e.err)
}

func (e *badRequest) Unwrap() error { return e.err }

func (s *server) serveAvatar(w http.ResponseWriter, r *http.Request) {
	seed := mux.Vars(r)["seed"]

	g, err := s.generator(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rd, err := s.renderer(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := g.GenerateFromSeed(seed)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeSVG(w, r, rd, data)
}

func (s *server) serveData(w http.ResponseWriter, r *http.Request) {
	seed := mux.Vars(r)["seed"]

	g, err := s.generator(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := g.GenerateFromSeed(seed)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", s.cacheControl())
	w.Write([]byte(data))
}

func (s *server) serveRender(w http.ResponseWriter, r *http.Request) {
	data := mux.Vars(r)["data"]

	rd, err := s.renderer(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeSVG(w, r, rd, data)
}

func (s *server) writeSVG(w http.ResponseWriter, r *http.Request, rd *pixavatar.Renderer, data string) {
	out, err := rd.Render(data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", s.cacheControl())
	w.Write([]byte(out))
}

func (s *server) generator(r *http.Request) (*pixavatar.Generator, error) {
	g := pixavatar.NewGenerator()
	g.Complexity = s.opts.Complexity

	q := r.URL.Query()
	if v := q.Get("complexity"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c < 1 {
			return nil, &badRequest{param: "complexity", err: pixavatar.ErrInvalidComplexity}
		}
		g.Complexity = c
	}
	if v := q.Get("sep"); v != "" {
		g.Separator = v
	}
	return g, nil
}

func (s *server) renderer(r *http.Request) (*pixavatar.Renderer, error) {
	rd := pixavatar.NewRenderer()
	rd.Size = s.opts.Size

	q := r.URL.Query()
	shape := s.opts.Shape
	if v := q.Get("shape"); v != "" {
		shape = v
	}
	sh, err := pixavatar.ShapeByName(shape)
	if err != nil {
		return nil, &badRequest{param: "shape", err: err}
	}
	rd.Shape = sh

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || (s.opts.MaxSize > 0 && size > s.opts.MaxSize) {
			return nil, &badRequest{param: "size", err: fmt.Errorf("size should be between 1 and %d", s.opts.MaxSize)}
		}
		rd.Size = size
	}
	if v := q.Get("sep"); v != "" {
		rd.Separator = v
	}
	return rd, nil
}

func (s *server) cacheControl() string {
	return "max-age=" + strconv.Itoa(s.opts.CacheAge)
}

// fail maps the error to its status code.
func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var br *badRequest

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &br):
		status = http.StatusBadRequest
	case errors.Is(err, pixavatar.ErrInvalidAvatarData),
		errors.Is(err, pixavatar.ErrMalformedToken):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, pixavatar.ErrInvalidComplexity):
		status = http.StatusBadRequest
	}
	s.opts.Logger.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	http.Error(w, err.Error(), status)
}
