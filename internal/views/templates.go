package views

// layoutTemplate wraps every page. Pages define "content".
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | 100 Times AI Heroes</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <header class="site-header">
    <a class="brand" href="/">100 Times AI Heroes</a>
    <nav class="site-nav">
      <a href="/"{{if eq .Section "home"}} class="active"{{end}}>Home</a>
      <a href="/gallery.html"{{if eq .Section "gallery"}} class="active"{{end}}>Gallery</a>
      <a href="/about.html"{{if eq .Section "about"}} class="active"{{end}}>About</a>
    </nav>
  </header>
  <main class="site-main">
{{template "content" .Page}}
  </main>
  <footer class="site-footer">
    <p>&copy; 100 Times AI Heroes</p>
  </footer>
  <script src="/app.js"></script>
</body>
</html>{{end}}`

// gridTemplate renders the gallery cards. It is also served on its own as
// the characterGrid fragment.
const gridTemplate = `{{define "grid"}}{{range .Cards}}
<a class="character-card" href="{{.Href}}" data-id="{{.ID}}">
  <div class="character-image"><span>{{.Icon}}</span></div>
  <div class="character-info">
    <h3 class="character-name">{{.Name}}</h3>
    <p class="character-role">{{.Role}}</p>
    <div class="character-tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
  </div>
</a>{{end}}{{end}}`

// profileTemplate renders a FieldSet: the detail page and the generator
// result share it under different id prefixes.
const profileTemplate = `{{define "profile"}}
<div class="profile">
  <div class="profile-icon" id="{{.ID "Icon"}}">{{.Text "Icon"}}</div>
  <div class="profile-body">
    <h2 class="profile-name" id="{{.ID "Name"}}">{{.Text "Name"}}</h2>
    <p class="profile-quote" id="{{.ID "Quote"}}">{{.Text "Quote"}}</p>
    <p class="profile-text" id="{{.ID "Profile"}}">{{.Text "Profile"}}</p>
    <dl class="profile-attributes">
      <dt>Age</dt><dd id="{{.ID "Age"}}">{{.Text "Age"}}</dd>
      <dt>Gender</dt><dd id="{{.ID "Gender"}}">{{.Text "Gender"}}</dd>
      <dt>Species</dt><dd id="{{.ID "Species"}}">{{.Text "Species"}}</dd>
      <dt>Role</dt><dd id="{{.ID "Role"}}">{{.Text "Role"}}</dd>
      <dt>Ability</dt><dd id="{{.ID "Ability"}}">{{.Text "Ability"}}</dd>
      <dt>Wants</dt><dd id="{{.ID "Wants"}}">{{.Text "Wants"}}</dd>
    </dl>
  </div>
</div>{{end}}`

const indexTemplate = `{{define "content"}}
<section class="hero">
  <h1>100 Times AI Heroes</h1>
  <p>AIが100回生み出したヒーローたち。年齢・性別・種族・能力・願望・役割の組み合わせから、一人ひとりの物語が立ち上がります。</p>
  <a class="cta" href="/gallery.html">ギャラリーを見る</a>
</section>
<section class="generate" id="generate">
  <h2>ヒーローを生成する</h2>
  <p class="generate-note">生成には通常20〜30秒かかります。デモでは{{.Delay}}で完了します。</p>
  <button type="button" id="generateBtn" class="generate-btn">Generate</button>
  <div id="generateLoading" class="loading" hidden>
    <div class="spinner"></div>
    <p>生成中...</p>
  </div>
  <div id="generateResult" class="result" hidden>
{{template "profile" .Result}}
  </div>
  <p id="generateError" class="generate-error" hidden></p>
</section>{{end}}`

const galleryTemplate = `{{define "content"}}
<section class="gallery">
  <h1>Character Gallery</h1>
  <div class="filters">
    {{range .Filters}}<a class="filter-btn{{if .Active}} active{{end}}" href="{{.Href}}" data-filter="{{.Label}}">{{.Label}}</a>
    {{end}}
  </div>
  <div class="character-grid" id="characterGrid">{{template "grid" .}}</div>
</section>{{end}}`

const detailTemplate = `{{define "content"}}
<section class="character-detail">
{{template "profile" .Profile}}
  <a class="back-link" href="/gallery.html">&larr; ギャラリーに戻る</a>
</section>{{end}}`

const aboutTemplate = `{{define "content"}}
<article class="about">
{{.}}
</article>{{end}}`

// cssContent is the stylesheet for every page.
const cssContent = `:root {
  --bg: #0d0f1a;
  --panel: #161a2b;
  --text: #eef0f8;
  --muted: #9aa3bf;
  --accent: #7c5cff;
  --accent-2: #23c4d8;
  --border: rgba(255, 255, 255, 0.08);
  --radius: 14px;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: "Hiragino Sans", "Noto Sans JP", system-ui, sans-serif;
  line-height: 1.7;
}
a { color: inherit; text-decoration: none; }
[hidden] { display: none !important; }
.site-header {
  display: flex; justify-content: space-between; align-items: center;
  padding: 16px 32px; border-bottom: 1px solid var(--border);
}
.brand { font-weight: 700; letter-spacing: 0.04em; }
.site-nav a { margin-left: 20px; color: var(--muted); }
.site-nav a.active, .site-nav a:hover { color: var(--text); }
.site-main { max-width: 1100px; margin: 0 auto; padding: 40px 24px; }
.site-footer { text-align: center; color: var(--muted); padding: 32px; font-size: 0.85rem; }
.hero { text-align: center; padding: 48px 0; }
.hero h1 { font-size: 2.6rem; margin: 0 0 12px; }
.cta, .generate-btn {
  display: inline-block; padding: 12px 28px; border-radius: 999px; border: none;
  background: linear-gradient(135deg, var(--accent), var(--accent-2));
  color: #fff; font-size: 1rem; cursor: pointer;
}
.generate-btn[disabled] { opacity: 0.5; cursor: not-allowed; }
.generate { background: var(--panel); border-radius: var(--radius); padding: 32px; margin-top: 32px; }
.generate-note, .generate-error { color: var(--muted); }
.loading { text-align: center; padding: 24px; }
.spinner {
  width: 40px; height: 40px; margin: 0 auto; border-radius: 50%;
  border: 4px solid var(--border); border-top-color: var(--accent);
  animation: spin 1s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }
.filters { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 24px; }
.filter-btn {
  padding: 6px 16px; border-radius: 999px; border: 1px solid var(--border);
  color: var(--muted); text-transform: capitalize;
}
.filter-btn.active { background: var(--accent); border-color: var(--accent); color: #fff; }
.character-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 20px; }
.character-card {
  background: var(--panel); border: 1px solid var(--border); border-radius: var(--radius);
  overflow: hidden; transition: transform 0.2s;
}
.character-card:hover { transform: translateY(-4px); }
.character-image { font-size: 4rem; text-align: center; padding: 28px 0; background: rgba(124, 92, 255, 0.12); }
.character-info { padding: 16px; }
.character-name { margin: 0; }
.character-role { color: var(--muted); margin: 4px 0 12px; }
.tag { display: inline-block; font-size: 0.75rem; padding: 2px 10px; margin: 0 6px 6px 0; border-radius: 999px; background: rgba(35, 196, 216, 0.15); }
.profile { display: flex; gap: 32px; align-items: flex-start; }
.profile-icon { font-size: 6rem; }
.profile-quote { font-size: 1.2rem; color: var(--accent-2); }
.profile-attributes { display: grid; grid-template-columns: max-content 1fr; gap: 6px 20px; }
.profile-attributes dt { color: var(--muted); }
.profile-attributes dd { margin: 0; }
.back-link { display: inline-block; margin-top: 32px; color: var(--muted); }
.about { background: var(--panel); border-radius: var(--radius); padding: 32px; }
@media (max-width: 720px) { .profile { flex-direction: column; } }
`

// jsContent drives the filter buttons and the generator panel.
const jsContent = `(function () {
  function applyTargets(targets, asHTML) {
    Object.keys(targets || {}).forEach(function (id) {
      var el = document.getElementById(id);
      if (!el) return;
      if (asHTML) {
        el.innerHTML = targets[id];
      } else {
        el.textContent = targets[id];
      }
    });
  }

  // Filter buttons: the clicked control is passed in explicitly.
  function selectFilter(btn) {
    var grid = document.getElementById('characterGrid');
    if (!grid) return;
    var filter = btn.getAttribute('data-filter');
    fetch('/fragments/gallery?filter=' + encodeURIComponent(filter))
      .then(function (res) { return res.json(); })
      .then(function (body) {
        applyTargets(body.targets, true);
        document.querySelectorAll('.filter-btn').forEach(function (b) {
          b.classList.remove('active');
        });
        btn.classList.add('active');
        history.replaceState(null, '', btn.getAttribute('href'));
      });
  }

  document.querySelectorAll('.filter-btn').forEach(function (btn) {
    btn.addEventListener('click', function (e) {
      e.preventDefault();
      selectFilter(btn);
    });
  });

  var generateBtn = document.getElementById('generateBtn');
  if (!generateBtn) return;
  var loading = document.getElementById('generateLoading');
  var result = document.getElementById('generateResult');
  var errorBox = document.getElementById('generateError');

  function showGenerating() {
    generateBtn.disabled = true;
    loading.hidden = false;
    result.hidden = true;
    errorBox.hidden = true;
  }

  function showResult(fields) {
    applyTargets(fields, false);
    loading.hidden = true;
    result.hidden = false;
    generateBtn.disabled = false;
  }

  function showError(message) {
    errorBox.textContent = message;
    errorBox.hidden = false;
  }

  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/ws/generate');
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === 'started') showGenerating();
    if (msg.type === 'completed') showResult(msg.fields);
    if (msg.type === 'error') {
      showError(msg.message);
      // No completion follows unless this page is generating.
      if (loading.hidden) generateBtn.disabled = false;
    }
  };

  generateBtn.addEventListener('click', function () {
    if (generateBtn.disabled) return;
    generateBtn.disabled = true;
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ type: 'generate' }));
      return;
    }
    fetch('/api/generate', { method: 'POST' }).then(function (res) {
      if (res.status === 409) {
        showError('生成中です。しばらくお待ちください。');
        generateBtn.disabled = false;
        return;
      }
      showGenerating();
      poll();
    }).catch(failed);
  });

  function failed() {
    showError('生成に失敗しました。もう一度お試しください。');
    loading.hidden = true;
    generateBtn.disabled = false;
  }

  function poll() {
    fetch('/api/generate').then(function (res) { return res.json(); }).then(function (status) {
      if (status.state === 'generating') {
        setTimeout(poll, 1000);
        return;
      }
      showResult(status.fields);
    }).catch(failed);
  }
})();
`
