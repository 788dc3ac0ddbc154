package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"signalpro/internal/app"
	"signalpro/internal/output"
	"signalpro/internal/signal"
)

type kindEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (s *Server) handleGenerate(c echo.Context) error {
	var req app.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := s.app.Generate(app.GenerateOptions{Request: req})
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusCreated, res)
}

func (s *Server) handlePreview(c echo.Context) error {
	var req app.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	summary, err := s.app.Preview(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, summary)
}

func (s *Server) handleKinds(c echo.Context) error {
	kinds := signal.Kinds()
	priorities := signal.Priorities()

	resp := struct {
		Kinds      []kindEntry `json:"kinds"`
		Priorities []kindEntry `json:"priorities"`
	}{
		Kinds:      make([]kindEntry, 0, len(kinds)),
		Priorities: make([]kindEntry, 0, len(priorities)),
	}

	for _, k := range kinds {
		resp.Kinds = append(resp.Kinds, kindEntry{Value: string(k), Label: k.DisplayName()})
	}
	for _, p := range priorities {
		label := p.Label()
		if label == "" {
			label = string(p)
		}
		resp.Priorities = append(resp.Priorities, kindEntry{Value: string(p), Label: label})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleFiles(c echo.Context) error {
	files, err := s.app.NewWriter().ListDocuments()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if files == nil {
		files = []output.FileInfo{}
	}
	return c.JSON(http.StatusOK, files)
}

func (s *Server) handleView(c echo.Context) error {
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == "/" || !strings.HasSuffix(filename, ".html") {
		return echo.NewHTTPError(http.StatusNotFound, "document not found")
	}

	path := filepath.Join(s.app.NewWriter().Dir(), filename)
	return c.File(path)
}
