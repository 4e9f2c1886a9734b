// Package render genera la imagen SVG del spider graph para previews
// sociales. Todo es string estatico: los crawlers de link-preview no
// ejecutan scripts.
package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"spidergraph/internal/domain"
)

const (
	canvasWidth        = 800
	canvasHeight       = 600
	centerX            = 400.0
	centerY            = 300.0
	maxRadius          = 120.0
	labelOffset        = 25.0
	maxChartCategories = 8
)

// CategoryScore es una categoria seleccionada para el chart.
type CategoryScore struct {
	Name  string
	Score float64
}

// TopCategories filtra scores > 0, ordena descendente con sort estable y
// corta al top 8. Los empates conservan el orden canonico: baseOrder
// primero (orden del taxonomy configurado), claves desconocidas despues
// en orden lexico. Eso hace la seleccion determinista aunque el input sea
// un map.
func TopCategories(results domain.AnalysisResult, baseOrder []string) []CategoryScore {
	seen := make(map[string]bool, len(baseOrder))
	entries := make([]CategoryScore, 0, len(results))

	for _, name := range baseOrder {
		if score, ok := results[name]; ok {
			seen[name] = true
			if score > 0 {
				entries = append(entries, CategoryScore{Name: name, Score: score})
			}
		}
	}

	var extra []string
	for name := range results {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		if score := results[name]; score > 0 {
			entries = append(entries, CategoryScore{Name: name, Score: score})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > maxChartCategories {
		entries = entries[:maxChartCategories]
	}
	return entries
}

// SpiderGraphSVG dibuja el radar chart para las categorias seleccionadas.
// Funcion pura: mismo input, mismos bytes. Si no queda ninguna categoria
// con score positivo, cae al layout de fallback.
func SpiderGraphSVG(username, name string, results domain.AnalysisResult, baseOrder []string) string {
	categories := TopCategories(results, baseOrder)
	if len(categories) == 0 {
		return FallbackSVG(username, name)
	}

	n := len(categories)

	type point struct {
		x, y float64
	}
	points := make([]point, 0, n)
	var pathData strings.Builder
	for i, cat := range categories {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		radius := cat.Score * maxRadius
		x := centerX + math.Cos(angle)*radius
		y := centerY + math.Sin(angle)*radius
		points = append(points, point{x, y})

		if i == 0 {
			fmt.Fprintf(&pathData, "M %s %s", coord(x), coord(y))
		} else {
			fmt.Fprintf(&pathData, " L %s %s", coord(x), coord(y))
		}
	}
	pathData.WriteString(" Z")

	var gridCircles strings.Builder
	for _, factor := range []float64{0.2, 0.4, 0.6, 0.8, 1.0} {
		fmt.Fprintf(&gridCircles,
			`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="#374151" stroke-width="1" opacity="0.3"/>`,
			coord(centerX), coord(centerY), coord(maxRadius*factor))
	}

	var axisLines strings.Builder
	for i := range categories {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		x2 := centerX + math.Cos(angle)*maxRadius
		y2 := centerY + math.Sin(angle)*maxRadius
		fmt.Fprintf(&axisLines,
			`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#374151" stroke-width="1" opacity="0.3"/>`,
			coord(centerX), coord(centerY), coord(x2), coord(y2))
	}

	var labels strings.Builder
	for i, cat := range categories {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		labelRadius := maxRadius + labelOffset
		x := centerX + math.Cos(angle)*labelRadius
		y := centerY + math.Sin(angle)*labelRadius
		fmt.Fprintf(&labels,
			`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="central" fill="#F1F5F9" font-family="Inter, sans-serif" font-size="11" font-weight="500">%s</text>`,
			coord(x), coord(y), escapeXML(cat.Name))
	}

	var dots strings.Builder
	for _, p := range points {
		fmt.Fprintf(&dots,
			`<circle cx="%s" cy="%s" r="4" fill="#6366F1" stroke="#1E293B" stroke-width="2"/>`,
			coord(p.x), coord(p.y))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, canvasWidth, canvasHeight)
	sb.WriteString(`<defs><linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" style="stop-color:#1E293B;stop-opacity:1"/><stop offset="100%" style="stop-color:#0F172A;stop-opacity:1"/></linearGradient><linearGradient id="spider" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" style="stop-color:#6366F1;stop-opacity:0.8"/><stop offset="100%" style="stop-color:#8B5CF6;stop-opacity:0.6"/></linearGradient></defs>`)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="url(#bg)"/>`, canvasWidth, canvasHeight)
	sb.WriteString(`<text x="400" y="60" text-anchor="middle" fill="#F1F5F9" font-family="Inter, sans-serif" font-size="32" font-weight="700">Ethos Spider Graph</text>`)
	fmt.Fprintf(&sb, `<text x="400" y="100" text-anchor="middle" fill="#CBD5E1" font-family="Inter, sans-serif" font-size="20" font-weight="600">%s</text>`, escapeXML(name))
	fmt.Fprintf(&sb, `<text x="400" y="125" text-anchor="middle" fill="#94A3B8" font-family="Inter, sans-serif" font-size="16">@%s</text>`, escapeXML(username))
	sb.WriteString(gridCircles.String())
	sb.WriteString(axisLines.String())
	fmt.Fprintf(&sb, `<path d="%s" fill="url(#spider)" stroke="#6366F1" stroke-width="2"/>`, pathData.String())
	sb.WriteString(dots.String())
	sb.WriteString(labels.String())
	sb.WriteString(`<text x="400" y="550" text-anchor="middle" fill="#64748B" font-family="Inter, sans-serif" font-size="14">AI-powered profile analysis</text>`)
	sb.WriteString(`</svg>`)

	return sb.String()
}

// FallbackSVG es la tarjeta fija cuando no hay analisis o algo fallo.
// El contrato del preview es devolver siempre UNA imagen.
func FallbackSVG(username, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, canvasWidth, canvasHeight)
	sb.WriteString(`<defs><linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%"><stop offset="0%" style="stop-color:#1E293B;stop-opacity:1"/><stop offset="100%" style="stop-color:#0F172A;stop-opacity:1"/></linearGradient></defs>`)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="url(#bg)"/>`, canvasWidth, canvasHeight)
	sb.WriteString(`<text x="400" y="200" text-anchor="middle" fill="#F1F5F9" font-family="Inter, sans-serif" font-size="32" font-weight="700">Ethos Spider Graph</text>`)
	fmt.Fprintf(&sb, `<text x="400" y="280" text-anchor="middle" fill="#CBD5E1" font-family="Inter, sans-serif" font-size="24" font-weight="600">%s</text>`, escapeXML(name))
	fmt.Fprintf(&sb, `<text x="400" y="320" text-anchor="middle" fill="#94A3B8" font-family="Inter, sans-serif" font-size="18">@%s</text>`, escapeXML(username))
	sb.WriteString(`<text x="400" y="380" text-anchor="middle" fill="#64748B" font-family="Inter, sans-serif" font-size="16">Profile analysis coming soon...</text>`)
	sb.WriteString(`<text x="400" y="500" text-anchor="middle" fill="#64748B" font-family="Inter, sans-serif" font-size="14">AI-powered profile analysis</text>`)
	sb.WriteString(`</svg>`)
	return sb.String()
}

// coord formatea coordenadas con dos decimales fijos para que el output
// sea byte-identico entre ejecuciones.
func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
