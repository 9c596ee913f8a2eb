package graph

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

// PageTitle is the browser title of the exported visualization.
const PageTitle = "Latticework of Mental Models"

// HubColor paints category hub nodes.
const HubColor = "#bc8cff"

// CategoryPalette cycles across categories in sorted order.
var CategoryPalette = []string{
	"#58a6ff", // blue
	"#3fb950", // green
	"#d29922", // orange
	"#39d1d1", // cyan
	"#f778ba", // pink
	"#f85149", // red
	"#a371f7", // violet
	"#7ee787", // lime
}

// WriteJSON writes the payload as indented JSON.
func WriteJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode graph payload: %w", err)
	}
	return nil
}

type pageData struct {
	Title    string
	Data     template.JS
	Palette  template.JS
	HubColor string
}

var pageTemplate = template.Must(template.New("lattice").Parse(latticePage))

// WriteHTML renders the payload as a self-contained force-directed
// page. Everything except the D3 library itself is inlined, so the
// output opens directly from disk.
func WriteHTML(w io.Writer, p Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode graph payload: %w", err)
	}
	palette, err := json.Marshal(CategoryPalette)
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	page := pageData{
		Title:    PageTitle,
		Data:     template.JS(data),
		Palette:  template.JS(palette),
		HubColor: HubColor,
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render graph page: %w", err)
	}
	return nil
}

const latticePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://d3js.org/d3.v7.min.js"></script>
    <link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;500;600&family=Crimson+Pro:wght@400;500;600&display=swap" rel="stylesheet">
    <style>
        :root {
            --bg-primary: #0d1117;
            --bg-secondary: #161b22;
            --bg-tertiary: #21262d;
            --text-primary: #e6edf3;
            --text-secondary: #8b949e;
            --text-muted: #484f58;
            --accent-blue: #58a6ff;
            --accent-purple: #bc8cff;
            --accent-green: #3fb950;
            --link-default: rgba(139, 148, 158, 0.25);
            --link-hover: rgba(88, 166, 255, 0.6);
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Crimson Pro', Georgia, serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            overflow: hidden;
            height: 100vh;
            width: 100vw;
        }

        #container {
            position: relative;
            width: 100%;
            height: 100%;
        }

        #graph-canvas {
            width: 100%;
            height: 100%;
            display: block;
        }

        .header {
            position: absolute;
            top: 0;
            left: 0;
            right: 0;
            padding: 24px 32px;
            background: linear-gradient(to bottom, var(--bg-primary) 0%, transparent 100%);
            pointer-events: none;
            z-index: 10;
        }

        .header h1 {
            font-family: 'Crimson Pro', Georgia, serif;
            font-size: 1.8rem;
            font-weight: 500;
            color: var(--text-primary);
            letter-spacing: 0.02em;
        }

        .header p {
            font-family: 'JetBrains Mono', monospace;
            font-size: 0.75rem;
            color: var(--text-secondary);
            margin-top: 6px;
            letter-spacing: 0.04em;
        }

        .legend {
            position: absolute;
            bottom: 24px;
            left: 32px;
            display: flex;
            flex-direction: column;
            gap: 10px;
            font-family: 'JetBrains Mono', monospace;
            font-size: 0.7rem;
            color: var(--text-secondary);
            z-index: 10;
            background: rgba(13, 17, 23, 0.85);
            padding: 16px 20px;
            border-radius: 12px;
            border: 1px solid var(--bg-tertiary);
            backdrop-filter: blur(12px);
        }

        .legend-item {
            display: flex;
            align-items: center;
            gap: 10px;
        }

        .legend-dot {
            width: 12px;
            height: 12px;
            border-radius: 50%;
            box-shadow: 0 0 8px currentColor;
        }

        .legend-dot.hub {
            width: 14px;
            height: 14px;
            border-radius: 3px;
        }

        .tooltip {
            position: fixed;
            top: 0;
            left: 0;
            pointer-events: none;
            background: var(--bg-secondary);
            border: 1px solid var(--bg-tertiary);
            border-radius: 10px;
            padding: 14px 18px;
            font-family: 'JetBrains Mono', monospace;
            font-size: 0.72rem;
            color: var(--text-primary);
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.5);
            opacity: 0;
            z-index: 100;
            max-width: 320px;
            backdrop-filter: blur(12px);
            will-change: transform, opacity;
            transition: opacity 0.15s ease-out;
        }

        .tooltip.visible {
            opacity: 1;
        }

        .tooltip-title {
            font-weight: 600;
            font-size: 0.85rem;
            margin-bottom: 8px;
            color: var(--accent-blue);
            font-family: 'Crimson Pro', Georgia, serif;
        }

        .tooltip-category {
            display: inline-block;
            padding: 3px 8px;
            border-radius: 4px;
            font-size: 0.65rem;
            text-transform: uppercase;
            letter-spacing: 0.08em;
            margin-bottom: 8px;
        }

        .tooltip-description {
            color: var(--text-secondary);
            line-height: 1.5;
            margin-bottom: 10px;
            font-family: 'Crimson Pro', Georgia, serif;
            font-size: 0.82rem;
        }

        .tooltip-date {
            color: var(--text-muted);
            font-size: 0.65rem;
        }

        .tooltip-hint {
            margin-top: 10px;
            padding-top: 10px;
            border-top: 1px solid var(--bg-tertiary);
            color: var(--accent-green);
            font-size: 0.65rem;
        }

        .instructions {
            position: absolute;
            bottom: 24px;
            right: 32px;
            font-family: 'JetBrains Mono', monospace;
            font-size: 0.65rem;
            color: var(--text-muted);
            text-align: right;
            z-index: 10;
        }

        .instructions kbd {
            background: var(--bg-tertiary);
            padding: 2px 6px;
            border-radius: 4px;
            border: 1px solid var(--text-muted);
            font-family: inherit;
        }

        .node-label {
            font-family: 'JetBrains Mono', monospace;
            font-size: 11px;
            fill: var(--text-secondary);
            pointer-events: none;
            text-anchor: middle;
            dominant-baseline: middle;
        }

        .node-label.hub {
            font-weight: 600;
            fill: var(--text-primary);
            font-size: 12px;
        }

        .bg-gradient {
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            bottom: 0;
            background:
                radial-gradient(ellipse at 20% 80%, rgba(88, 166, 255, 0.05) 0%, transparent 50%),
                radial-gradient(ellipse at 80% 20%, rgba(188, 140, 255, 0.05) 0%, transparent 50%),
                radial-gradient(ellipse at 50% 50%, rgba(63, 185, 80, 0.03) 0%, transparent 60%);
            pointer-events: none;
            z-index: 0;
        }

        .link {
            stroke: var(--link-default);
            stroke-width: 1.5;
            fill: none;
            transition: opacity 0.2s ease-out, stroke 0.2s ease-out;
        }

        .link.cross-link {
            stroke-dasharray: 4, 4;
            stroke-width: 1;
            opacity: 0.5;
        }

        .link.highlighted {
            stroke: var(--link-hover);
            stroke-width: 2.5;
        }

        .node {
            cursor: pointer;
        }

        .node-circle {
            transition: opacity 0.2s ease-out;
        }

        .node.dimmed .node-circle {
            opacity: 0.2;
        }

        .node.dimmed .node-label {
            opacity: 0.2;
        }

        .link.dimmed {
            opacity: 0.08;
        }
    </style>
</head>
<body>
    <div class="bg-gradient"></div>

    <div id="container">
        <svg id="graph-canvas"></svg>

        <div class="header">
            <h1>{{.Title}}</h1>
            <p>An interconnected knowledge graph</p>
        </div>

        <div class="legend" id="legend"></div>

        <div class="instructions">
            <kbd>Click</kbd> node to open post<br>
            <kbd>Drag</kbd> to move nodes<br>
            <kbd>Scroll</kbd> to zoom
        </div>

        <div class="tooltip" id="tooltip"></div>
    </div>

    <script>
        const data = {{.Data}};
        const colorPalette = {{.Palette}};

        const categories = data.categories;
        const categoryColors = { "Hub": {{.HubColor}} };
        categories.forEach((c, i) => {
            categoryColors[c] = colorPalette[i % colorPalette.length];
        });

        const legend = document.getElementById('legend');
        let legendHTML = '<div class="legend-item">' +
            '<div class="legend-dot hub" style="background: ' + categoryColors.Hub + ';"></div>' +
            '<span>Category Hub</span></div>';
        categories.forEach(c => {
            legendHTML += '<div class="legend-item">' +
                '<div class="legend-dot" style="background: ' + categoryColors[c] + ';"></div>' +
                '<span>' + c + '</span></div>';
        });
        legend.innerHTML = legendHTML;

        const nodes = data.nodes;
        const links = data.links;

        const svg = d3.select('#graph-canvas');
        const container = document.getElementById('container');
        let width = container.clientWidth;
        let height = container.clientHeight;

        svg.attr('width', width).attr('height', height);

        const g = svg.append('g');

        const zoom = d3.zoom()
            .scaleExtent([0.3, 4])
            .on('zoom', (event) => {
                g.attr('transform', event.transform);
            });

        svg.call(zoom);

        const initialTransform = d3.zoomIdentity
            .translate(width / 2, height / 2)
            .scale(0.9);
        svg.call(zoom.transform, initialTransform);

        const simulation = d3.forceSimulation(nodes)
            .force('link', d3.forceLink(links)
                .id(d => d.id)
                .distance(d => d.type === 'hub-link' ? 120 : 180)
                .strength(d => d.type === 'hub-link' ? 0.8 : 0.2))
            .force('charge', d3.forceManyBody()
                .strength(d => d.type === 'hub' ? -600 : -300))
            .force('center', d3.forceCenter(0, 0))
            .force('collision', d3.forceCollide()
                .radius(d => d.radius + 40))
            .velocityDecay(0.4)
            .alphaDecay(0.02);

        const link = g.append('g')
            .attr('class', 'links')
            .selectAll('line')
            .data(links)
            .enter()
            .append('line')
            .attr('class', d => 'link ' + (d.type === 'cross-link' ? 'cross-link' : ''));

        const node = g.append('g')
            .attr('class', 'nodes')
            .selectAll('g')
            .data(nodes)
            .enter()
            .append('g')
            .attr('class', 'node')
            .call(d3.drag()
                .on('start', dragstarted)
                .on('drag', dragged)
                .on('end', dragended));

        const defs = svg.append('defs');
        const filter = defs.append('filter')
            .attr('id', 'glow')
            .attr('x', '-50%')
            .attr('y', '-50%')
            .attr('width', '200%')
            .attr('height', '200%');

        filter.append('feGaussianBlur')
            .attr('stdDeviation', '3')
            .attr('result', 'coloredBlur');

        const feMerge = filter.append('feMerge');
        feMerge.append('feMergeNode').attr('in', 'coloredBlur');
        feMerge.append('feMergeNode').attr('in', 'SourceGraphic');

        node.append('circle')
            .attr('class', 'node-circle')
            .attr('r', d => d.radius)
            .attr('fill', d => d.type === 'hub' ? categoryColors.Hub : categoryColors[d.category])
            .attr('stroke', d => d.type === 'hub' ? categoryColors.Hub : categoryColors[d.category])
            .attr('stroke-width', 2)
            .attr('stroke-opacity', 0.6)
            .attr('fill-opacity', d => d.type === 'hub' ? 0.9 : 0.85)
            .style('filter', 'url(#glow)');

        node.filter(d => d.type === 'hub')
            .append('rect')
            .attr('width', 8)
            .attr('height', 8)
            .attr('x', -4)
            .attr('y', -4)
            .attr('transform', 'rotate(45)')
            .attr('fill', 'rgba(255,255,255,0.3)')
            .attr('rx', 1);

        node.append('text')
            .attr('class', d => 'node-label ' + (d.type === 'hub' ? 'hub' : ''))
            .attr('dy', d => d.radius + 16)
            .text(d => d.label);

        const tooltip = document.getElementById('tooltip');
        let tooltipX = 0, tooltipY = 0;
        let tooltipVisible = false;

        function updateTooltipPosition() {
            if (tooltipVisible) {
                tooltip.style.transform = 'translate(' + tooltipX + 'px, ' + tooltipY + 'px)';
            }
            requestAnimationFrame(updateTooltipPosition);
        }
        requestAnimationFrame(updateTooltipPosition);

        const connectedNodesMap = new Map();
        nodes.forEach(n => {
            const connected = new Set([n.id]);
            links.forEach(l => {
                const sourceId = typeof l.source === 'object' ? l.source.id : l.source;
                const targetId = typeof l.target === 'object' ? l.target.id : l.target;
                if (sourceId === n.id) connected.add(targetId);
                if (targetId === n.id) connected.add(sourceId);
            });
            connectedNodesMap.set(n.id, connected);
        });

        node.on('mouseenter', function(event, d) {
            d3.select(this).select('.node-circle')
                .transition()
                .duration(150)
                .attr('r', d.radius * 1.15);

            const connectedNodeIds = connectedNodesMap.get(d.id);

            node.classed('dimmed', n => !connectedNodeIds.has(n.id));
            link.classed('dimmed', l => {
                const sourceId = typeof l.source === 'object' ? l.source.id : l.source;
                const targetId = typeof l.target === 'object' ? l.target.id : l.target;
                return sourceId !== d.id && targetId !== d.id;
            });
            link.classed('highlighted', l => {
                const sourceId = typeof l.source === 'object' ? l.source.id : l.source;
                const targetId = typeof l.target === 'object' ? l.target.id : l.target;
                return sourceId === d.id || targetId === d.id;
            });

            if (d.type === 'post') {
                const color = categoryColors[d.category];
                tooltip.innerHTML = '<div class="tooltip-title">' + d.label + '</div>' +
                    '<span class="tooltip-category" style="background: ' + color + '22; color: ' + color + '; border: 1px solid ' + color + '44;">' + d.category + '</span>' +
                    '<div class="tooltip-description">' + (d.description || '') + '</div>' +
                    '<div class="tooltip-date">' + (d.published || '') + '</div>' +
                    '<div class="tooltip-hint">Click to read</div>';
            } else {
                const count = nodes.filter(n => n.type === 'post' && n.category === d.category).length;
                tooltip.innerHTML = '<div class="tooltip-title">' + d.label + '</div>' +
                    '<div class="tooltip-description">' + count + ' mental model' + (count > 1 ? 's' : '') + '</div>';
            }

            tooltipX = event.pageX + 15;
            tooltipY = event.pageY + 15;
            tooltipVisible = true;
            tooltip.classList.add('visible');
        });

        node.on('mousemove', function(event) {
            let x = event.pageX + 15;
            let y = event.pageY + 15;

            const tooltipRect = tooltip.getBoundingClientRect();
            if (x + tooltipRect.width > window.innerWidth - 20) {
                x = event.pageX - tooltipRect.width - 15;
            }
            if (y + tooltipRect.height > window.innerHeight - 20) {
                y = event.pageY - tooltipRect.height - 15;
            }

            tooltipX = x;
            tooltipY = y;
        });

        node.on('mouseleave', function(event, d) {
            d3.select(this).select('.node-circle')
                .transition()
                .duration(150)
                .attr('r', d.radius);

            node.classed('dimmed', false);
            link.classed('dimmed', false);
            link.classed('highlighted', false);
            tooltipVisible = false;
            tooltip.classList.remove('visible');
        });

        node.on('click', function(event, d) {
            if (d.type === 'post' && d.link) {
                window.open(d.link, '_blank');
            }
        });

        simulation.on('tick', () => {
            link
                .attr('x1', d => d.source.x)
                .attr('y1', d => d.source.y)
                .attr('x2', d => d.target.x)
                .attr('y2', d => d.target.y);

            node.attr('transform', d => 'translate(' + d.x + ',' + d.y + ')');
        });

        simulation.on('end', () => {
            simulation.stop();
        });

        function dragstarted(event, d) {
            if (!event.active) simulation.alphaTarget(0.3).restart();
            d.fx = d.x;
            d.fy = d.y;
        }

        function dragged(event, d) {
            d.fx = event.x;
            d.fy = event.y;
        }

        function dragended(event, d) {
            if (!event.active) simulation.alphaTarget(0);
            d.fx = null;
            d.fy = null;
        }

        window.addEventListener('resize', () => {
            width = container.clientWidth;
            height = container.clientHeight;
            svg.attr('width', width).attr('height', height);
        });

        node.style('opacity', 0)
            .transition()
            .delay((d, i) => i * 50)
            .duration(500)
            .style('opacity', 1);

        link.style('opacity', 0)
            .transition()
            .delay(300)
            .duration(800)
            .style('opacity', 1);
    </script>
</body>
</html>
`
