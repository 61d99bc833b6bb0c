// Package webui runs a small Echo web server with the interactive upload
// form and the report API used by the flowlens serve command.
package webui

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agilekit/flowlens/core"
	"github.com/agilekit/flowlens/internal/contract"
	"github.com/agilekit/flowlens/internal/outwriter"
	"github.com/agilekit/flowlens/internal/tabfile"
	"github.com/agilekit/flowlens/schema"
)

// maxUploadBytes bounds the accepted upload size. History exports are small;
// anything bigger is almost certainly the wrong file.
const maxUploadBytes = 32 << 20

// DownloadFilename is the attachment name for spreadsheet downloads.
const DownloadFilename = "cycle_time_and_age.xlsx"

// Server wires the HTTP handlers to a validated base configuration.
// Every request clones the base config before applying its own settings, so
// concurrent uploads never share mutable state.
type Server struct {
	baseCfg *contract.Config
}

// NewServer creates a Server around the given base configuration.
func NewServer(baseCfg *contract.Config) *Server {
	return &Server{baseCfg: baseCfg}
}

// Run starts the Echo server and blocks until it stops.
func Run(cfg *contract.Config) error {
	s := NewServer(cfg)
	e := s.Echo()
	return e.Start(cfg.ServeAddr)
}

// Echo builds the configured Echo instance. Split from Run for handler tests.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/", s.handleIndex)
	e.GET("/api/health", s.handleHealth)
	e.POST("/api/report", s.handleReportJSON)
	e.POST("/api/report/xlsx", s.handleReportXLSX)

	return e
}

// handleIndex serves the upload form, prefilled from the base configuration.
func (s *Server) handleIndex(c echo.Context) error {
	html, err := renderIndex(s.baseCfg)
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, html)
}

// handleHealth is a trivial liveness probe.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleReportJSON computes the report for one upload and returns it as JSON.
func (s *Server) handleReportJSON(c echo.Context) error {
	report, _, err := s.computeFromRequest(c)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// handleReportXLSX computes the report and streams it back as a spreadsheet
// download, mirroring the CLI's xlsx output.
func (s *Server) handleReportXLSX(c echo.Context) error {
	report, cfg, err := s.computeFromRequest(c)
	if err != nil {
		return reportError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", DownloadFilename))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return outwriter.StreamReportXLSX(report, cfg, c.Response())
}

// computeFromRequest reads the uploaded table and runs the pipeline with the
// request's settings. The resolved config is returned alongside the report so
// handlers that render dates reuse the exact config the report was computed
// with, including its "today" anchor.
func (s *Server) computeFromRequest(c echo.Context) (schema.Report, *contract.Config, error) {
	cfg, err := s.requestConfig(c)
	if err != nil {
		return schema.Report{}, nil, err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return schema.Report{}, nil, &requestError{status: http.StatusBadRequest, msg: "missing upload field 'file'"}
	}
	if fileHeader.Size > maxUploadBytes {
		return schema.Report{}, nil, &requestError{status: http.StatusRequestEntityTooLarge, msg: "upload too large"}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return schema.Report{}, nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	table, err := tabfile.ReadReader(src, fileHeader.Filename)
	if err != nil {
		return schema.Report{}, nil, &requestError{status: http.StatusBadRequest, msg: err.Error()}
	}

	report, err := core.BuildReport(table, cfg)
	if err != nil {
		return schema.Report{}, nil, err
	}
	return report, cfg, nil
}

// requestConfig layers the form fields over the base configuration.
func (s *Server) requestConfig(c echo.Context) (*contract.Config, error) {
	overrides := contract.Overrides{
		Timezone:   c.FormValue("timezone"),
		InProgress: c.FormValue("in_progress"),
		Done:       c.FormValue("done"),
		Today:      c.FormValue("today"),
	}
	if v := c.FormValue("include_not_started"); v != "" {
		include, err := contract.ParseBoolString(v)
		if err != nil {
			return nil, &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("invalid include_not_started: %v", err)}
		}
		overrides.IncludeNotStarted = &include
	}

	cfg, err := contract.ApplyOverrides(s.baseCfg, overrides)
	if err != nil {
		return nil, &requestError{status: http.StatusBadRequest, msg: err.Error()}
	}
	return cfg, nil
}

// requestError is a client-facing error with an HTTP status.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

// reportError maps pipeline errors onto HTTP responses. Schema problems are
// the user's input, not a server fault, so they come back as 422 with the
// found-vs-required detail.
func reportError(c echo.Context, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return c.JSON(reqErr.status, map[string]string{"error": reqErr.msg})
	}

	var schemaErr *contract.SchemaError
	if errors.As(err, &schemaErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   "schema error",
			"missing": schemaErr.Missing,
			"found":   schemaErr.Found,
		})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
