package main

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chriskillpack/jpnphoneme"
)

var (
	//go:embed tmpl/*.html
	tmplFS embed.FS

	//go:embed static
	staticFS embed.FS

	indexTmpl *template.Template
)

func init() {
	indexTmpl = template.Must(template.ParseFS(tmplFS, "tmpl/index.html"))
}

// Server exposes the phoneme converter over HTTP: an HTML form at / and a
// JSON endpoint at /convert.
type Server struct {
	hs     *http.Server
	logger *log.Logger

	trie *jpnphoneme.LoadedTrie
}

func NewServer(lt *jpnphoneme.LoadedTrie, port string) *Server {
	srv := &Server{trie: lt, logger: log.Default()}
	srv.hs = &http.Server{
		Addr:    net.JoinHostPort("0.0.0.0", port),
		Handler: srv.serveHandler(),
	}
	return srv
}

func (s *Server) Start() error                      { return s.hs.ListenAndServe() }
func (s *Server) Shutdown(ctx context.Context) error { return s.hs.Shutdown(ctx) }

func (s *Server) serveHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.FileServerFS(staticFS))
	mux.Handle("GET /convert", s.logRequest(s.serveConvert()))
	mux.Handle("GET /", s.logRequest(s.serveRoot()))

	return mux
}

func (s *Server) serveConvert() http.HandlerFunc {
	type response struct {
		Phonemes string   `json:"phonemes"`
		Matches  []string `json:"matches,omitempty"`
	}

	return func(w http.ResponseWriter, req *http.Request) {
		qvals := req.URL.Query()
		text := qvals.Get("text")
		if text == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		segment := true
		if v := qvals.Get("segment"); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				segment = b
			}
		}

		m := jpnphoneme.NewMatcher(s.trie, jpnphoneme.Config{SegmentWords: segment})
		start := time.Now()
		res, err := m.ConvertDetailed(text)
		duration := time.Since(start)
		s.logger.Printf("convert text=%q segment=%v duration=%s", text, segment, duration)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		resp := response{Phonemes: res.Phonemes}
		for _, mt := range res.Matches {
			resp.Matches = append(resp.Matches, mt.Original+" -> "+mt.Phoneme)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(&resp); err != nil {
			s.logger.Printf("error encoding response: %s", err)
		}
	}
}

func (s *Server) serveRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		escQuery := req.URL.Query().Get("text")
		text, _ := url.QueryUnescape(escQuery)

		data := struct{ Text string }{text}
		if err := indexTmpl.Execute(w, data); err != nil {
			s.logger.Printf("error rendering template %s\n", err)
		}
	}
}

// logRequest wraps the response writer to capture the status code, then
// logs method/path/status/duration.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		lrw := newLoggingResponseWriter(w)
		next.ServeHTTP(lrw, req)

		s.logger.Printf("method=%s path=%s status=%d duration=%s",
			req.Method, req.URL.EscapedPath(), lrw.statusCode, time.Since(start))
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, 0}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
