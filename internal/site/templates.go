package site

// pageTemplate is the Go html/template for each guide page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SectionTitle}} | {{.Title}}</title>
  {{- if .Description}}
  <meta name="description" content="{{.Description}}">
  {{- end}}
  <link rel="stylesheet" href="{{.Links.Stylesheet}}">
</head>
<body>
  <header class="site-header">
    <div class="container">
      <h1 class="site-title"><a href="{{.Links.Home}}">{{.Title}}</a></h1>
      {{if .Subtitle}}<p class="site-subtitle">{{.Subtitle}}</p>{{end}}
    </div>
  </header>
  <div class="container layout">
    <nav class="sidebar" aria-label="Contents">
      <h2 class="sidebar-heading">Contents</h2>
      <input type="search" id="search-input" placeholder="Search the guide..." autocomplete="off" data-index="{{.Links.Search}}">
      <ul class="search-results" id="search-results"></ul>
      <ul class="nav-list">
        {{- range .Nav}}
        <li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Icon}}<span>{{.Label}}</span></a></li>
        {{- end}}
      </ul>
    </nav>
    <main class="content">
      <article class="page-content">
        {{.Content}}
      </article>
    </main>
  </div>
  {{- if .Diagrams}}
  <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
  {{- end}}
  <script src="{{.Links.Script}}"></script>
</body>
</html>`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #111827;
  --bg-panel: rgba(31, 41, 55, 0.3);
  --bg-header: rgba(31, 41, 55, 0.5);
  --bg-code: #1f2937;
  --text: #e5e7eb;
  --text-muted: #9ca3af;
  --border: #374151;
  --accent: #22d3ee;
  --accent-soft: rgba(6, 182, 212, 0.2);
  --danger: #f87171;
  --sidebar-width: 18rem;
}

*, *::before, *::after { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.7;
}

a { color: var(--accent); }

.container {
  max-width: 80rem;
  margin: 0 auto;
  padding: 0 1.5rem;
}

/* Header */
.site-header {
  position: sticky;
  top: 0;
  z-index: 10;
  padding: 1rem 0;
  background: var(--bg-header);
  backdrop-filter: blur(4px);
  border-bottom: 1px solid var(--border);
}

.site-title {
  margin: 0;
  font-size: 1.5rem;
  font-weight: 700;
}

.site-title a { text-decoration: none; }

.site-subtitle {
  margin: 0.25rem 0 0;
  font-size: 0.875rem;
  color: var(--text-muted);
}

/* Layout */
.layout {
  display: flex;
  gap: 1.5rem;
  padding-top: 1.5rem;
  padding-bottom: 1.5rem;
}

.sidebar {
  flex: 0 0 var(--sidebar-width);
  align-self: flex-start;
  position: sticky;
  top: 6rem;
  padding: 1.5rem;
  background: var(--bg-panel);
  border: 1px solid var(--border);
  border-radius: 0.5rem;
}

.sidebar-heading {
  margin: 0 0 1rem;
  font-size: 1.125rem;
  color: #fff;
}

#search-input {
  width: 100%;
  margin-bottom: 0.75rem;
  padding: 0.5rem 0.75rem;
  border: 1px solid var(--border);
  border-radius: 0.375rem;
  background: var(--bg);
  color: var(--text);
}

.search-results {
  list-style: none;
  margin: 0 0 0.75rem;
  padding: 0;
  font-size: 0.875rem;
}

.search-results li { padding: 0.25rem 0; }

.nav-list {
  list-style: none;
  margin: 0;
  padding: 0;
}

.nav-list li + li { margin-top: 0.5rem; }

.nav-list a {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  padding: 0.75rem;
  border-radius: 0.5rem;
  color: #d1d5db;
  text-decoration: none;
  transition: background 0.2s, color 0.2s;
}

.nav-list a:hover {
  background: rgba(55, 65, 81, 0.5);
  color: #fff;
}

.nav-list a.active {
  background: var(--accent-soft);
  color: var(--accent);
  font-weight: 600;
}

.nav-icon {
  width: 1.25rem;
  height: 1.25rem;
  flex-shrink: 0;
}

.content {
  flex: 1;
  min-width: 0;
  padding: 2rem;
  background: var(--bg-panel);
  border: 1px solid var(--border);
  border-radius: 0.5rem;
}

/* Content */
.page-content h1, .page-content h2 { color: #fff; }
.page-content h3, .page-content h4 { color: var(--accent); }

.page-content code {
  padding: 0.1rem 0.35rem;
  border-radius: 0.25rem;
  background: var(--bg-code);
  font-size: 0.875em;
}

.page-content pre {
  overflow-x: auto;
  padding: 1rem;
  border: 1px solid var(--border);
  border-radius: 0.5rem;
}

.page-content .mermaid {
  display: flex;
  justify-content: center;
  margin: 1.5rem 0;
  padding: 1rem;
  background: var(--bg-panel);
  border: 1px solid var(--border);
  border-radius: 0.5rem;
}

.page-content pre code {
  padding: 0;
  background: none;
}

.page-content table {
  width: 100%;
  border-collapse: collapse;
}

.page-content th {
  padding: 1rem;
  text-align: left;
  text-transform: uppercase;
  font-size: 0.875rem;
  background: var(--bg-code);
  color: var(--accent);
}

.page-content td {
  padding: 1rem;
  vertical-align: top;
  border-bottom: 1px solid var(--border);
}

.page-content td strong { color: var(--danger); }

@media (max-width: 768px) {
  .layout { flex-direction: column; }
  .sidebar { position: static; width: 100%; }
  .nav-list { display: flex; overflow-x: auto; gap: 0.5rem; }
  .nav-list li + li { margin-top: 0; }
  .nav-list a { white-space: nowrap; }
}
`

// jsContent drives the sidebar search box from the search index and turns
// mermaid code blocks into diagrams.
const jsContent = `(function() {
  "use strict";

  var input = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  if (!input || !results) return;

  var index = null;

  function load() {
    if (index) return Promise.resolve(index);
    return fetch(input.getAttribute("data-index"))
      .then(function(r) { return r.json(); })
      .then(function(data) { index = data || []; return index; });
  }

  function render(entries, q) {
    results.innerHTML = "";
    if (!q) return;
    entries.forEach(function(e) {
      var text = (e.title + " " + e.content).toLowerCase();
      if (text.indexOf(q) === -1) return;
      var li = document.createElement("li");
      var a = document.createElement("a");
      a.href = e.path;
      a.textContent = e.title;
      li.appendChild(a);
      results.appendChild(li);
    });
  }

  input.addEventListener("input", function() {
    var q = input.value.trim().toLowerCase();
    load().then(function(entries) { render(entries, q); });
  });
})();

(function() {
  "use strict";

  if (typeof mermaid === "undefined") return;
  mermaid.initialize({ startOnLoad: false, theme: "dark", flowchart: { htmlLabels: true } });
  document.querySelectorAll("pre > code.language-mermaid").forEach(function(code, idx) {
    var pre = code.parentElement;
    var div = document.createElement("div");
    div.className = "mermaid";
    pre.parentElement.replaceChild(div, pre);
    mermaid.render("mermaid-diagram-" + idx, code.textContent).then(function(result) {
      div.innerHTML = result.svg;
    }).catch(function(err) {
      div.textContent = "Diagram error: " + err.message;
    });
  });
})();
`
