/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for graph pages: a header with model details, an inline
SVG drawing of the automaton and an edge table.
*/

package render

// pageTemplate is the self-contained graph page
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - mentor</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            color: #333;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 20px;
        }

        .header, .card {
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
            margin-bottom: 30px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .header {
            text-align: center;
        }

        .header h1 {
            color: #4a5568;
            font-size: 2.5rem;
            margin-bottom: 10px;
            font-weight: 700;
        }

        .header p {
            color: #718096;
        }

        svg .node circle {
            fill: #fff;
            stroke: #4a5568;
            stroke-width: 2;
        }

        svg .node.accepting circle.inner {
            fill: none;
        }

        svg .node.rejecting circle {
            stroke: #e53e3e;
        }

        svg .edge path {
            fill: none;
            stroke: #667eea;
            stroke-width: 1.6;
        }

        svg text {
            font-size: 13px;
            text-anchor: middle;
            dominant-baseline: middle;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            text-align: left;
            padding: 6px 10px;
            border-bottom: 1px solid #e2e8f0;
        }

        @media print {
            body { background: #fff; }
            .header, .card { box-shadow: none; }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p class="kind">{{.Kind}}</p>
            <p class="meta">{{len .Layout.Nodes}} states, {{len .Layout.Edges}} edges · generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}} · session <span class="session">{{.SessionID}}</span></p>
        </div>
        <div class="card">
            <svg xmlns="http://www.w3.org/2000/svg" width="{{printf "%.0f" .Layout.Width}}" height="{{printf "%.0f" .Layout.Height}}" viewBox="0 0 {{printf "%.0f" .Layout.Width}} {{printf "%.0f" .Layout.Height}}">
                <defs>
                    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">
                        <path d="M 0 0 L 10 5 L 0 10 z" fill="#667eea"></path>
                    </marker>
                </defs>
                {{range .Layout.Edges}}
                <g class="edge" data-from="{{.From}}" data-to="{{.To}}">
                    <path d="{{.Path}}" marker-end="url(#arrow)"></path>
                    <text class="edge-label" x="{{printf "%.1f" .LX}}" y="{{printf "%.1f" .LY}}">{{.Label}}</text>
                </g>
                {{end}}
                {{range .Layout.Nodes}}
                <g class="node{{if .Accepting}} accepting{{end}}{{if .Rejecting}} rejecting{{end}}{{if .Start}} start{{end}}" data-id="{{.ID}}">
                    {{if .Start}}<path class="start-arrow" d="M {{printf "%.1f" (sub .X 56)}} {{printf "%.1f" .Y}} L {{printf "%.1f" (sub .X 24)}} {{printf "%.1f" .Y}}" stroke="#4a5568" marker-end="url(#arrow)"></path>{{end}}
                    <circle cx="{{printf "%.1f" .X}}" cy="{{printf "%.1f" .Y}}" r="22"></circle>
                    {{if .Accepting}}<circle class="inner" cx="{{printf "%.1f" .X}}" cy="{{printf "%.1f" .Y}}" r="17"></circle>{{end}}
                    <text class="node-label" x="{{printf "%.1f" .X}}" y="{{printf "%.1f" .Y}}">{{.Label}}</text>
                </g>
                {{end}}
            </svg>
        </div>
        <div class="card">
            <table class="edges">
                <thead><tr><th>From</th><th>To</th><th>Label</th></tr></thead>
                <tbody>
                {{range .Edges}}
                    <tr><td>{{.From}}</td><td>{{.To}}</td><td>{{.Label}}</td></tr>
                {{end}}
                </tbody>
            </table>
        </div>
    </div>
</body>
</html>
`
