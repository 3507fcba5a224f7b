package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"codeguard/internal/report"
	"codeguard/internal/source"
)

type analyzeRequest struct {
	Code     *string `json:"code"`
	Language string  `json:"language"`
	Filename string  `json:"filename"`
}

type languageInfo struct {
	ID    string `json:"id"`
	Rules int    `json:"rules"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>codeguard</title>
<style>{{.Stylesheet}}</style>
</head>
<body>
<div class="container">
<h1>Source Code Security Scanner</h1>
{{with .Error}}<div class="card warning" id="error">{{.}}</div>{{end}}
<div class="card">
<h3>Paste code</h3>
<form id="paste-form" method="post" action="/analyze">
  <select name="language">
  {{range .Languages}}<option value="{{.ID}}"{{if eq .ID $.Selected}} selected{{end}}>{{.ID}} ({{.Rules}} rules)</option>
  {{end}}</select>
  <textarea name="code" rows="16" style="width:100%">{{.Code}}</textarea>
  <button type="submit">Analyze</button>
</form>
</div>
<div class="card">
<h3>Upload file</h3>
<form id="upload-form" method="post" action="/analyze" enctype="multipart/form-data">
  <input type="file" name="file">
  <button type="submit">Analyze</button>
</form>
</div>
</div>
</body>
</html>
`))

type indexView struct {
	Stylesheet template.CSS
	Languages  []languageInfo
	Selected   string
	Code       string
	Error      string
}

func (s *Server) languages() []languageInfo {
	reg := s.analyzer.Registry()
	out := []languageInfo{}
	for _, id := range reg.Languages() {
		set, _ := reg.RulesFor(id)
		if set.Len() == 0 {
			continue
		}
		out = append(out, languageInfo{ID: id, Rules: set.Len()})
	}
	return out
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, view indexView) {
	view.Stylesheet = template.CSS(report.Stylesheet)
	view.Languages = s.languages()
	if view.Selected == "" {
		view.Selected = "php"
	}
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, view); err != nil {
		s.logger.Error("render index", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, http.StatusOK, indexView{})
}

func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	mem := s.bodyLimit()
	if mem <= 0 {
		mem = 32 << 20
	}
	if err := r.ParseMultipartForm(mem); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		s.renderIndex(w, statusFor(err), indexView{Error: "Could not read submission: " + err.Error()})
		return
	}

	code := r.FormValue("code")
	lang := r.FormValue("language")
	filename := ""

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			s.renderIndex(w, statusFor(err), indexView{Error: "Could not read uploaded file"})
			return
		}
		code = string(data)
		filename = header.Filename
		lang = source.LanguageForFile(filename)
	} else if strings.TrimSpace(code) == "" {
		s.renderIndex(w, http.StatusBadRequest, indexView{Selected: lang, Error: "Please paste some code or upload a file."})
		return
	}

	rep, err := s.analyzer.AnalyzeString(r.Context(), code, lang, filename)
	if err != nil {
		s.logger.Warn("analysis failed", zap.Error(err))
		s.renderIndex(w, statusFor(err), indexView{Selected: lang, Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := report.HTML(&buf, rep); err != nil {
		s.logger.Error("render report", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleAnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Code == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "code is required"})
		return
	}

	lang := req.Language
	if strings.TrimSpace(lang) == "" && req.Filename != "" {
		lang = source.LanguageForFile(req.Filename)
	}

	rep, err := s.analyzer.AnalyzeString(r.Context(), *req.Code, lang, req.Filename)
	if err != nil {
		s.logger.Warn("analysis failed", zap.Error(err))
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := report.JSON(&buf, rep); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.languages())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
