// Package preview renders the panel review page: a single HTML document
// embedding every generated panel SVG, with a printable 100mm ruler so a
// paper test print can be checked against a real ruler before cutting.
package preview

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cicchiello/pi-nas/internal/config"
)

// rulerSVG is a 100mm reference bar with 10mm ticks. It only shows up in
// print media, where it must measure exactly 100mm at 100% scale.
const rulerSVG = `<svg xmlns="http://www.w3.org/2000/svg" class="ruler"
      width="110mm" height="12mm" viewBox="0 0 110 12">
  <rect x="5" y="2" width="100" height="4" fill="none" stroke="#000" stroke-width="0.3"/>
  <line x1="5" y1="2" x2="5" y2="10" stroke="#000" stroke-width="0.3"/>
  <text x="5" y="11.5" font-size="2.5" font-family="monospace" text-anchor="middle">0</text>
  <line x1="15" y1="4" x2="15" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="25" y1="4" x2="25" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="35" y1="4" x2="35" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="45" y1="4" x2="45" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="55" y1="2" x2="55" y2="10" stroke="#000" stroke-width="0.3"/>
  <text x="55" y="11.5" font-size="2.5" font-family="monospace" text-anchor="middle">50</text>
  <line x1="65" y1="4" x2="65" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="75" y1="4" x2="75" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="85" y1="4" x2="85" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="95" y1="4" x2="95" y2="8" stroke="#000" stroke-width="0.2"/>
  <line x1="105" y1="2" x2="105" y2="10" stroke="#000" stroke-width="0.3"/>
  <text x="105" y="11.5" font-size="2.5" font-family="monospace" text-anchor="middle">100mm</text>
</svg>`

var pageTmpl = template.Must(template.New("review").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8">
<title>Pi5 NAS Enclosure — Panel Review</title>
<style>
  /* === Screen styles === */
  body { font-family: system-ui, sans-serif; background: #1a1a2e; color: #eee; margin: 2em; }
  h1 { color: #e94560; }
  .panel { background: #16213e; border: 1px solid #0f3460; border-radius: 8px;
           padding: 1.5em; margin: 1.5em 0; }
  .panel h2 { color: #e94560; margin-top: 0; }
  .panel svg:not(.ruler) { background: #fff; border: 1px solid #333; display: block; margin: 1em auto;
               max-width: 100%; height: auto; }
  .dims { color: #aaa; font-size: 0.9em; }
  .summary { background: #0f3460; padding: 1em; border-radius: 8px; margin-bottom: 2em; }
  .summary td { padding: 4px 12px; }
  .summary th { text-align: left; padding: 4px 12px; color: #e94560; }
  .ruler { display: none; }
  .print-note { display: none; }
  .print-btn { background: #e94560; color: #fff; border: none; padding: 10px 24px;
               border-radius: 6px; font-size: 1em; cursor: pointer; margin-bottom: 1em; }
  .print-btn:hover { background: #c73650; }

  /* === Print styles === */
  @media print {
    body { background: #fff; color: #000; margin: 0; padding: 5mm; }
    h1 { color: #000; font-size: 14pt; }
    .panel { background: #fff; border: none; padding: 0; margin: 0;
             page-break-inside: avoid; page-break-after: always; }
    .panel h2 { color: #000; font-size: 12pt; margin-bottom: 2mm; }
    .panel svg:not(.ruler) { border: none; margin: 0; background: #fff;
                 max-width: none; width: auto; height: auto; }
    .summary { background: #fff; border: 1px solid #ccc; }
    .summary th { color: #000; }
    .ruler { display: block; margin: 2mm 0; }
    .print-note { display: block; font-size: 9pt; color: #666; margin-bottom: 3mm; }
    .print-btn { display: none; }
  }
</style>
</head><body>
<h1>Pi5 NAS Acrylic Enclosure — Panel Review</h1>
<button class="print-btn" onclick="window.print()">Print at Actual Size</button>
<p class="print-note">Verify the ruler below measures exactly 100mm. If not, adjust print scale to 100%.</p>
{{.Ruler}}
<div class="summary">
<table>
<tr><th>Exterior</th><td>{{.Exterior}}</td></tr>
<tr><th>Interior</th><td>{{.Interior}}</td></tr>
<tr><th>Total Height</th><td>{{.TotalHeight}}</td></tr>
<tr><th>Drive Bottom Z</th><td>{{.DriveBottom}}</td></tr>
<tr><th>Assembly</th><td>Vertical M4 rods (top/bottom only) + finger joint tabs (front/back into side)</td></tr>
<tr><th>Panels</th><td>{{len .Panels}} SVG files</td></tr>
</table>
</div>
{{range .Panels}}<div class="panel">
<h2>{{.Title}}</h2>
<p class="print-note">Verify ruler = 100mm. Print at 100% scale (no fit-to-page).</p>
{{$.Ruler}}
{{.SVG}}
</div>
{{end}}</body></html>
`))

type panelEntry struct {
	Title string
	SVG   template.HTML
}

type pageData struct {
	Ruler       template.HTML
	Exterior    string
	Interior    string
	TotalHeight string
	DriveBottom string
	Panels      []panelEntry
}

// panelTitle derives a display title from an SVG filename:
// "01_bottom_panel.svg" becomes "bottom panel".
func panelTitle(filename string) string {
	name := strings.TrimSuffix(filename, ".svg")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimLeft(name, "0123456789 ")
}

// Write renders the review page for every .svg file in dir.
func Write(w io.Writer, dir string, cfg config.Config) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".svg") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no panel SVGs in %s", dir)
	}
	sort.Strings(names)

	dims := cfg.Derive()
	data := pageData{
		Ruler:       template.HTML(rulerSVG),
		Exterior:    fmt.Sprintf("%.0f x %.0f x %.0f mm", dims.ExtX, dims.ExtY, dims.TotalH),
		Interior:    fmt.Sprintf("%.0f x %.0f mm", dims.InteriorX, dims.InteriorY),
		TotalHeight: fmt.Sprintf("%.1f mm (%.1f in)", dims.TotalH, dims.TotalH/25.4),
		DriveBottom: fmt.Sprintf("%.1f mm from bottom", dims.ZDriveBot),
	}

	for _, name := range names {
		svg, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		data.Panels = append(data.Panels, panelEntry{
			Title: panelTitle(name),
			// The SVGs are our own output, embedded verbatim.
			SVG: template.HTML(svg),
		})
	}

	return pageTmpl.Execute(w, data)
}

// Save writes the review page as panel_review.html inside dir.
func Save(dir string, cfg config.Config) (string, error) {
	path := filepath.Join(dir, "panel_review.html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, dir, cfg); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
