package site

// pageTemplate is the whole document. Everything the page needs ships
// inline so the output file can be copied anywhere on its own.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Brand.Title}}</title>
  <meta name="description" content="{{.Brand.Description}}">
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap" rel="stylesheet">
  <style>
    /* Reset and base */
    *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

    :root {
      --bg: #08080d;
      --bg-card: #0e0e18;
      --border: #1a1a2e;
      --text: #c8c8d4;
      --text-dim: #6a6a80;
      --heading: #e8e8f0;
      --accent: #4fc3f7;
      --accent-dim: #2a7ea8;
      --keyword: #c792ea;
      --string: #c3e88d;
      --comment: #546e7a;
      --type: #ffcb6b;
      --number: #f78c6c;
      --fn: #82aaff;
      --mono: 'SF Mono', 'Cascadia Code', 'JetBrains Mono', 'Fira Code', Consolas, monospace;
      --sans: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', system-ui, sans-serif;
    }

    html { scroll-behavior: smooth; height: 100%; }

    body {
      font-family: var(--sans);
      background: var(--bg);
      color: var(--text);
      line-height: 1.7;
      height: 100%;
      overflow: hidden;
      display: flex;
      flex-direction: column;
    }

    /* Lattice background pattern */
    body::before {
      content: '';
      position: fixed;
      inset: 0;
      background:
        linear-gradient(rgba(79,195,247,0.03) 1px, transparent 1px),
        linear-gradient(90deg, rgba(79,195,247,0.03) 1px, transparent 1px);
      background-size: 60px 60px;
      pointer-events: none;
      z-index: 0;
    }

    /* Header */
    .doc-header {
      display: flex;
      align-items: center;
      justify-content: space-between;
      padding: 12px 24px;
      border-bottom: 1px solid var(--border);
      background: var(--bg-card);
      position: relative;
      z-index: 10;
      flex-shrink: 0;
    }

    .doc-header-left {
      display: flex;
      align-items: center;
      gap: 16px;
    }

    .doc-logo {
      font-family: var(--mono);
      font-size: 1rem;
      font-weight: 700;
      color: var(--heading);
      text-decoration: none;
      background: linear-gradient(135deg, var(--heading), var(--accent));
      -webkit-background-clip: text;
      -webkit-text-fill-color: transparent;
      background-clip: text;
    }

    .doc-sep {
      color: var(--border);
      font-size: 1.2rem;
      user-select: none;
    }

    .doc-title {
      font-family: var(--mono);
      font-size: 0.85rem;
      color: var(--text-dim);
    }

    .doc-header-right {
      display: flex;
      align-items: center;
      gap: 12px;
    }

    .doc-btn {
      font-family: var(--mono);
      font-size: 0.75rem;
      padding: 6px 14px;
      border-radius: 6px;
      border: 1px solid var(--border);
      background: transparent;
      color: var(--text-dim);
      cursor: pointer;
      text-decoration: none;
      transition: all 0.2s;
    }
    .doc-btn:hover {
      border-color: var(--accent-dim);
      color: var(--accent);
    }

    /* Layout */
    .doc-layout {
      display: flex;
      flex: 1;
      overflow: hidden;
      position: relative;
      z-index: 1;
    }

    /* Sidebar */
    .doc-sidebar {
      width: 240px;
      flex-shrink: 0;
      border-right: 1px solid var(--border);
      background: var(--bg-card);
      overflow-y: auto;
      padding: 20px 0;
    }

    .doc-sidebar::-webkit-scrollbar { width: 6px; }
    .doc-sidebar::-webkit-scrollbar-track { background: transparent; }
    .doc-sidebar::-webkit-scrollbar-thumb { background: var(--border); border-radius: 3px; }
    .doc-sidebar::-webkit-scrollbar-thumb:hover { background: var(--text-dim); }

    .sidebar-section {
      margin-bottom: 20px;
    }

    .sidebar-heading {
      font-family: var(--mono);
      font-size: 0.7rem;
      text-transform: uppercase;
      letter-spacing: 0.12em;
      color: var(--text-dim);
      padding: 0 20px;
      margin-bottom: 6px;
    }

    .sidebar-link {
      display: flex;
      align-items: center;
      justify-content: space-between;
      padding: 5px 20px;
      font-size: 0.82rem;
      color: var(--text);
      text-decoration: none;
      transition: all 0.15s;
    }
    .sidebar-link:hover {
      color: var(--accent);
      background: rgba(79,195,247,0.04);
    }
    .sidebar-link.active {
      color: var(--accent);
      background: rgba(79,195,247,0.08);
      border-right: 2px solid var(--accent);
    }

    .sidebar-count {
      font-family: var(--mono);
      font-size: 0.65rem;
      color: var(--text-dim);
      background: rgba(255,255,255,0.04);
      padding: 1px 6px;
      border-radius: 8px;
    }

    .sidebar-empty {
      padding: 20px;
      font-size: 0.82rem;
      color: var(--text-dim);
      line-height: 1.5;
    }

    /* Mobile sidebar toggle */
    .sidebar-toggle {
      display: none;
      position: fixed;
      bottom: 20px;
      right: 20px;
      z-index: 20;
      width: 44px;
      height: 44px;
      border-radius: 50%;
      border: 1px solid var(--border);
      background: var(--bg-card);
      color: var(--accent);
      font-size: 1.2rem;
      cursor: pointer;
      align-items: center;
      justify-content: center;
      box-shadow: 0 4px 12px rgba(0,0,0,0.4);
    }

    /* Content */
    .doc-content {
      flex: 1;
      overflow-y: auto;
      padding: 24px 32px 60px;
    }

    .doc-content::-webkit-scrollbar { width: 8px; }
    .doc-content::-webkit-scrollbar-track { background: transparent; }
    .doc-content::-webkit-scrollbar-thumb { background: var(--border); border-radius: 4px; }
    .doc-content::-webkit-scrollbar-thumb:hover { background: var(--text-dim); }

    /* Search */
    .doc-search-wrap {
      position: sticky;
      top: 0;
      background: var(--bg);
      padding: 0 0 16px;
      z-index: 5;
      margin-bottom: 8px;
    }

    #doc-search {
      width: 100%;
      max-width: 480px;
      font-family: var(--mono);
      font-size: 0.85rem;
      padding: 10px 16px;
      border-radius: 8px;
      border: 1px solid var(--border);
      background: var(--bg-card);
      color: var(--text);
      outline: none;
      transition: border-color 0.2s;
    }
    #doc-search:focus {
      border-color: var(--accent-dim);
    }
    #doc-search::placeholder {
      color: var(--text-dim);
      opacity: 0.6;
    }

    .doc-stats {
      font-family: var(--mono);
      font-size: 0.72rem;
      color: var(--text-dim);
      margin-top: 8px;
    }

    /* Intro */
    .doc-intro {
      max-width: 720px;
      margin-bottom: 40px;
      font-size: 0.9rem;
      color: var(--text);
    }
    .doc-intro h1, .doc-intro h2, .doc-intro h3 {
      color: var(--heading);
      margin-bottom: 12px;
    }
    .doc-intro p {
      margin-bottom: 12px;
    }
    .doc-intro code {
      font-family: var(--mono);
      font-size: 0.82rem;
      background: var(--bg-card);
      padding: 2px 6px;
      border-radius: 4px;
      border: 1px solid var(--border);
    }

    /* Section label and title */
    .section-label {
      font-family: var(--mono);
      font-size: 0.75rem;
      text-transform: uppercase;
      letter-spacing: 0.15em;
      color: var(--accent);
      margin-bottom: 6px;
    }

    .section-title {
      font-size: 1.5rem;
      font-weight: 600;
      color: var(--heading);
      margin-bottom: 16px;
      padding-top: 8px;
    }

    /* Doc category */
    .doc-category {
      margin-bottom: 40px;
    }

    /* Doc entry */
    .doc-entry {
      background: var(--bg-card);
      border: 1px solid var(--border);
      border-radius: 8px;
      padding: 20px;
      margin-bottom: 12px;
      transition: border-color 0.2s;
    }
    .doc-entry:hover {
      border-color: var(--accent-dim);
    }
    .doc-entry.hidden {
      display: none;
    }

    .doc-sig {
      font-family: var(--mono);
      font-size: 0.9rem;
      line-height: 1.5;
      margin-bottom: 8px;
    }
    .doc-sig .fn {
      color: var(--fn);
      font-weight: 600;
    }
    .doc-sig .typ {
      color: var(--type);
    }
    .doc-sig .op {
      color: var(--text-dim);
    }
    .doc-sig .text {
      color: var(--text);
    }

    .doc-desc {
      font-size: 0.875rem;
      color: var(--text-dim);
      line-height: 1.6;
      margin-bottom: 8px;
    }

    .doc-examples {
      margin-top: 10px;
    }

    .doc-examples pre {
      background: rgba(0,0,0,0.2);
      border: 1px solid var(--border);
      border-radius: 6px;
      padding: 10px 14px;
      margin-bottom: 6px;
      overflow-x: auto;
    }

    .doc-examples code {
      font-family: var(--mono);
      font-size: 0.82rem;
      color: var(--text);
      line-height: 1.6;
    }

    .doc-examples .cmt {
      color: var(--comment);
      font-style: italic;
    }

    /* Syntax highlighting classes (match site) */
    .kw { color: var(--keyword); }
    .str { color: var(--string); }
    .cmt { color: var(--comment); font-style: italic; }
    .typ { color: var(--type); }
    .num { color: var(--number); }
    .fn { color: var(--fn); }
    .op { color: var(--text-dim); }

    /* Empty state */
    .doc-empty {
      text-align: center;
      padding: 80px 24px;
    }

    .doc-empty-icon {
      font-size: 3rem;
      color: var(--accent-dim);
      margin-bottom: 16px;
    }

    .doc-empty h2 {
      font-size: 1.5rem;
      font-weight: 600;
      color: var(--heading);
      margin-bottom: 12px;
    }

    .doc-empty p {
      color: var(--text-dim);
      margin-bottom: 24px;
      max-width: 520px;
      margin-left: auto;
      margin-right: auto;
    }

    .doc-empty code {
      font-family: var(--mono);
      font-size: 0.82rem;
      background: var(--bg-card);
      padding: 2px 6px;
      border-radius: 4px;
      border: 1px solid var(--border);
    }

    .doc-empty-example {
      max-width: 560px;
      margin: 0 auto;
      text-align: left;
    }

    .doc-empty-example pre {
      background: var(--bg-card);
      border: 1px solid var(--border);
      border-radius: 8px;
      padding: 16px 20px;
      overflow-x: auto;
      font-family: var(--mono);
      font-size: 0.82rem;
      line-height: 1.7;
    }

    .doc-empty-example code {
      font-family: var(--mono);
      font-size: 0.82rem;
      background: none;
      border: none;
      padding: 0;
    }

    /* Responsive */
    @media (max-width: 768px) {
      .doc-sidebar {
        position: fixed;
        left: -260px;
        top: 0;
        bottom: 0;
        z-index: 15;
        transition: left 0.25s ease;
        box-shadow: none;
      }
      .doc-sidebar.open {
        left: 0;
        box-shadow: 4px 0 20px rgba(0,0,0,0.5);
      }

      .sidebar-toggle {
        display: flex;
      }

      .sidebar-overlay {
        display: none;
        position: fixed;
        inset: 0;
        background: rgba(0,0,0,0.5);
        z-index: 14;
      }
      .sidebar-overlay.open {
        display: block;
      }

      .doc-content {
        padding: 20px 16px 60px;
      }

      .doc-header {
        padding: 10px 16px;
      }

      .doc-title { display: none; }
      .doc-sep { display: none; }
    }

    @media (max-width: 480px) {
      .doc-entry {
        padding: 14px;
      }
      .doc-sig {
        font-size: 0.8rem;
      }
    }
  </style>
</head>
<body>

<!-- Header -->
<div class="doc-header">
  <div class="doc-header-left">
    <a href="{{.Brand.HomeURL}}" class="doc-logo">{{.Brand.SiteName}}</a>
    <span class="doc-sep">/</span>
    <span class="doc-title">Documentation</span>
  </div>
  <div class="doc-header-right">
{{- if .Brand.PlaygroundURL}}
    <a href="{{.Brand.PlaygroundURL}}" class="doc-btn">Playground</a>
{{- end}}
    <a href="{{.Brand.HomeURL}}" class="doc-btn">Home</a>
{{- if .Brand.RepoURL}}
    <a href="{{.Brand.RepoURL}}" class="doc-btn">GitHub</a>
{{- end}}
  </div>
</div>

<!-- Layout -->
<div class="doc-layout">

  <!-- Sidebar -->
  <nav class="doc-sidebar" id="doc-sidebar">
{{- if .Empty}}
      <div class="sidebar-empty">Add doc comments to source files to see categories here.</div>
{{- else}}
{{- range .Sections}}
      <div class="sidebar-section">
        <div class="sidebar-heading">{{.Name}}</div>
{{- range .Categories}}
        <a href="#{{.Anchor}}" class="sidebar-link" data-cat="{{.Anchor}}">{{.Name}}<span class="sidebar-count">{{.Count}}</span></a>
{{- end}}
      </div>
{{- end}}
{{- end}}
  </nav>

  <!-- Overlay for mobile sidebar -->
  <div class="sidebar-overlay" id="sidebar-overlay"></div>

  <!-- Content -->
  <main class="doc-content" id="doc-content">
    <div class="doc-search-wrap">
      <input type="text" id="doc-search" placeholder="Search functions..." autocomplete="off" spellcheck="false">
      <div class="doc-stats">{{.TotalEntries}} functions across {{.TotalCategories}} categories</div>
    </div>
{{- if .Empty}}
    <div class="doc-empty">
      <div class="doc-empty-icon">&#x25C7;</div>
      <h2>No Documentation Yet</h2>
      <p>Add <code>/// @builtin</code> or <code>/// @method</code> doc comments to C source files to generate documentation.</p>
      <div class="doc-empty-example">
        <pre><code><span class="cmt">/// @builtin print(value: Any) -> Unit</span>
<span class="cmt">/// @category Core</span>
<span class="cmt">/// Prints a value to stdout followed by a newline.</span>
<span class="cmt">/// @example print("hello")  // hello</span>
if (strcmp(fn_name, "print") == 0) {</code></pre>
      </div>
    </div>
{{- else}}
{{- if .IntroHTML}}
    <div class="doc-intro">{{.IntroHTML}}</div>
{{- end}}
{{- range .Sections}}
{{- $section := .Name}}
{{- range .Categories}}
    <div class="doc-category" id="{{.Anchor}}">
      <div class="section-label">{{$section}}</div>
      <h2 class="section-title">{{.Name}}</h2>
{{- range .Entries}}
      <div class="doc-entry" id="{{.Anchor}}" data-name="{{.NameLower}}" data-desc="{{.DescLower}}">
        <div class="doc-sig">{{.Signature}}</div>
{{- if .Description}}
        <p class="doc-desc">{{.Description}}</p>
{{- end}}
{{- if .Examples}}
        <div class="doc-examples">
{{- range .Examples}}
          <pre><code>{{.}}</code></pre>
{{- end}}
        </div>
{{- end}}
      </div>
{{- end}}
    </div>
{{- end}}
{{- end}}
{{- end}}
  </main>
</div>

<!-- Mobile sidebar toggle -->
<button class="sidebar-toggle" id="sidebar-toggle" aria-label="Toggle navigation">&#9776;</button>

<script>
(function() {
  'use strict';

  // Search / filter
  var searchInput = document.getElementById('doc-search');
  var entries = document.querySelectorAll('.doc-entry');
  var categories = document.querySelectorAll('.doc-category');

  searchInput.addEventListener('input', function() {
    var q = this.value.toLowerCase().trim();

    for (var i = 0; i < entries.length; i++) {
      var entry = entries[i];
      var name = entry.getAttribute('data-name') || '';
      var desc = entry.getAttribute('data-desc') || '';

      if (!q || name.indexOf(q) !== -1 || desc.indexOf(q) !== -1) {
        entry.classList.remove('hidden');
      } else {
        entry.classList.add('hidden');
      }
    }

    // Hide categories with all entries hidden
    for (var j = 0; j < categories.length; j++) {
      var cat = categories[j];
      var visibleEntries = cat.querySelectorAll('.doc-entry:not(.hidden)');
      cat.style.display = visibleEntries.length === 0 ? 'none' : '';
    }
  });

  // Sidebar active state on scroll
  var contentEl = document.getElementById('doc-content');
  var sidebarLinks = document.querySelectorAll('.sidebar-link');

  function updateActiveLink() {
    var scrollTop = contentEl.scrollTop;
    var current = '';

    for (var i = 0; i < categories.length; i++) {
      var cat = categories[i];
      if (cat.offsetTop - 120 <= scrollTop) {
        current = cat.id;
      }
    }

    for (var j = 0; j < sidebarLinks.length; j++) {
      var link = sidebarLinks[j];
      if (link.getAttribute('data-cat') === current) {
        link.classList.add('active');
      } else {
        link.classList.remove('active');
      }
    }
  }

  contentEl.addEventListener('scroll', updateActiveLink);
  updateActiveLink();

  // Sidebar link click scrolls the content pane
  for (var k = 0; k < sidebarLinks.length; k++) {
    sidebarLinks[k].addEventListener('click', function(e) {
      e.preventDefault();
      var targetId = this.getAttribute('data-cat');
      var target = document.getElementById(targetId);
      if (target) {
        contentEl.scrollTo({ top: target.offsetTop - 16, behavior: 'smooth' });
      }
      // Close mobile sidebar
      document.getElementById('doc-sidebar').classList.remove('open');
      document.getElementById('sidebar-overlay').classList.remove('open');
    });
  }

  // Mobile sidebar toggle
  var toggleBtn = document.getElementById('sidebar-toggle');
  var sidebar = document.getElementById('doc-sidebar');
  var overlay = document.getElementById('sidebar-overlay');

  toggleBtn.addEventListener('click', function() {
    sidebar.classList.toggle('open');
    overlay.classList.toggle('open');
  });

  overlay.addEventListener('click', function() {
    sidebar.classList.remove('open');
    overlay.classList.remove('open');
  });

  // Keyboard shortcuts: / focuses search, Escape leaves it
  document.addEventListener('keydown', function(e) {
    if (e.key === '/' && document.activeElement !== searchInput) {
      e.preventDefault();
      searchInput.focus();
    }
    if (e.key === 'Escape' && document.activeElement === searchInput) {
      searchInput.blur();
    }
  });
})();
</script>

</body>
</html>
`
