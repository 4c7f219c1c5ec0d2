package handlers

import "net/http"

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>WRO Future Engineers Field Randomizer</title>
</head>
<body>
  <h1>WRO Future Engineers Field Randomizer</h1>
  <p>Each link below returns a freshly randomized field layout as a PNG image.</p>
  <h2>Open Challenge (qualification)</h2>
  <ul>
    <li><a href="/qualification/random">Random driving direction</a></li>
    <li><a href="/qualification/cw">Clockwise</a></li>
    <li><a href="/qualification/ccw">Counterclockwise</a></li>
  </ul>
  <h2>Open Challenge, fixed center section</h2>
  <ul>
    <li><a href="/qualification-fixed/random">Random driving direction</a></li>
    <li><a href="/qualification-fixed/cw">Clockwise</a></li>
    <li><a href="/qualification-fixed/ccw">Counterclockwise</a></li>
  </ul>
  <h2>Obstacle Challenge (final)</h2>
  <ul>
    <li><a href="/final/random">Random driving direction</a></li>
    <li><a href="/final/cw">Clockwise</a></li>
    <li><a href="/final/ccw">Counterclockwise</a></li>
  </ul>
</body>
</html>
`

// IndexHandler serves a small landing page linking the challenge routes.
type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexPage))
}
