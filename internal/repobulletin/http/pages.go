package http

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	stdhttp "net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"repobulletin.shikanime.studio/internal/bulletin"
	"repobulletin.shikanime.studio/internal/encoding"
	"repobulletin.shikanime.studio/internal/repobulletin"
)

var pageTemplate = template.Must(template.New("bulletin").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Owner.Login}}'s bulletin</title>
</head>
<body>
{{if .Owner.AvatarURL}}<img src="{{.Owner.AvatarURL}}" alt="{{.Owner.Login}}" width="64" height="64">{{end}}
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Owner bulletin.Identity
	Body  template.HTML
}

// pageHandler renders the public bulletin of /u/{user} as HTML, or as
// markdown when the path ends in ".md".
type pageHandler struct {
	clients *repobulletin.RepoBulletin
}

func (h *pageHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	tracer := otel.Tracer("repobulletin/http")
	ctx, span := tracer.Start(r.Context(), "pageHandler.ServeHTTP")
	defer span.End()

	user, asMarkdown := strings.CutSuffix(r.PathValue("user"), ".md")
	span.SetAttributes(attribute.String("user", user), attribute.Bool("markdown", asMarkdown))
	if user == "" {
		stdhttp.NotFound(w, r)
		return
	}

	page, err := h.clients.Loader().Load(ctx, user)
	if errors.Is(err, bulletin.ErrNotFound) {
		stdhttp.NotFound(w, r)
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "render bulletin page failed", "user", user, "error", err)
		stdhttp.Error(w, "bulletin temporarily unavailable", stdhttp.StatusServiceUnavailable)
		return
	}

	md := encoding.MarshalMarkdown(page.Owner, page.Persisted, page.Catalog)
	if asMarkdown {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write(md)
		return
	}

	body, err := encoding.RenderHTML(md)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		stdhttp.Error(w, err.Error(), stdhttp.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Owner: page.Owner, Body: template.HTML(body)}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		stdhttp.Error(w, err.Error(), stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
