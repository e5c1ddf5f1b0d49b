package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simvar/app"
	"simvar/domain/dist"
	apperrors "simvar/internal/errors"
)

// variateRequest carries the parameters every distribution shares. Absent
// fields keep their zero values except where a handler presets the
// distribution's conventional defaults before binding.
type variateRequest struct {
	N          int  `json:"n"`
	Stream     int  `json:"stream"`
	Antithetic bool `json:"antithetic"`
	AsRecord   bool `json:"as_record"`
}

func (r variateRequest) options() app.Options {
	return app.Options{Stream: r.Stream, Antithetic: r.Antithetic}
}

type unifRequest struct {
	variateRequest
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type expRequest struct {
	variateRequest
	Rate float64 `json:"rate"`
}

type binomRequest struct {
	variateRequest
	Size int     `json:"size"`
	Prob float64 `json:"prob"`
}

type normRequest struct {
	variateRequest
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
}

type seedRequest struct {
	// Seed is optional: absent means reseed from system entropy.
	Seed *int64 `json:"seed"`
}

type sweepRequest struct {
	N          int     `json:"n"`
	Streams    []int   `json:"streams"`
	Antithetic bool    `json:"antithetic"`
	Dist       string  `json:"dist"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Rate       float64 `json:"rate"`
	Size       int     `json:"size"`
	Prob       float64 `json:"prob"`
	Mean       float64 `json:"mean"`
	SD         float64 `json:"sd"`
}

func (s *Server) handleUnif(c *gin.Context) {
	req := unifRequest{Min: 0, Max: 1}
	if !bindJSON(c, &req) {
		return
	}
	if req.AsRecord {
		rec, err := s.svc.UnifRecord(req.N, req.Min, req.Max, req.options())
		respond(c, rec, err)
		return
	}
	x, err := s.svc.Unif(req.N, req.Min, req.Max, req.options())
	respondVariates(c, x, err)
}

func (s *Server) handleExp(c *gin.Context) {
	req := expRequest{Rate: 1}
	if !bindJSON(c, &req) {
		return
	}
	if req.AsRecord {
		rec, err := s.svc.ExpRecord(req.N, req.Rate, req.options())
		respond(c, rec, err)
		return
	}
	x, err := s.svc.Exp(req.N, req.Rate, req.options())
	respondVariates(c, x, err)
}

func (s *Server) handleBinom(c *gin.Context) {
	var req binomRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.AsRecord {
		rec, err := s.svc.BinomRecord(req.N, req.Size, req.Prob, req.options())
		respond(c, rec, err)
		return
	}
	x, err := s.svc.Binom(req.N, req.Size, req.Prob, req.options())
	respondVariates(c, x, err)
}

func (s *Server) handleNorm(c *gin.Context) {
	req := normRequest{Mean: 0, SD: 1}
	if !bindJSON(c, &req) {
		return
	}
	if req.AsRecord {
		rec, err := s.svc.NormRecord(req.N, req.Mean, req.SD, req.options())
		respond(c, rec, err)
		return
	}
	x, err := s.svc.Norm(req.N, req.Mean, req.SD, req.options())
	respondVariates(c, x, err)
}

func (s *Server) handleSeed(c *gin.Context) {
	var req seedRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if req.Seed == nil {
		if err := s.svc.SetSeedFromEntropy(); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"seeded": "entropy"})
		return
	}
	s.svc.SetSeed(*req.Seed)
	c.JSON(http.StatusOK, gin.H{"seeded": *req.Seed})
}

func (s *Server) handleSweep(c *gin.Context) {
	req := sweepRequest{Max: 1, Rate: 1, SD: 1}
	if !bindJSON(c, &req) {
		return
	}
	spec, err := sweepSpec(req)
	if err != nil {
		writeError(c, err)
		return
	}
	res, err := s.sweep.Run(req.N, req.Streams, req.Antithetic, spec)
	respond(c, res, err)
}

func sweepSpec(req sweepRequest) (dist.Spec, error) {
	switch dist.Kind(req.Dist) {
	case dist.KindUniform:
		return dist.Uniform{Min: req.Min, Max: req.Max}, nil
	case dist.KindExponential:
		return dist.Exponential{Rate: req.Rate}, nil
	case dist.KindBinomial:
		return dist.Binomial{Size: req.Size, Prob: req.Prob}, nil
	case dist.KindNormal:
		return dist.Normal{Mean: req.Mean, SD: req.SD}, nil
	default:
		return nil, apperrors.ValidationErrorf("sweep: unknown distribution %q", req.Dist)
	}
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  apperrors.CodeValidationError,
			"error": "malformed request body: " + err.Error(),
		})
		return false
	}
	return true
}

func respondVariates(c *gin.Context, x interface{}, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": x})
}

func respond(c *gin.Context, body interface{}, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// writeError maps the error taxonomy onto HTTP statuses: usage errors are
// the client's fault, everything else is a 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.CodeValidationError, apperrors.CodeStreamOutOfRange:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"code":  apperrors.GetCode(err),
		"error": err.Error(),
	})
}
