package site

// StyleSheet is served as style.css and written by Generate.
const StyleSheet = `/* ============ Variables ============ */
:root {
  --bg: #f6f4ef;
  --surface: #ffffff;
  --ink: #1d1d1f;
  --muted: #6b6b70;
  --line: #e3dfd6;
  --accent: #2563eb;
  --accent-soft: #dbe6fd;
  --radius: 16px;
  --shadow: 0 10px 30px rgba(20, 20, 30, 0.08);
  --font: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; background: var(--bg); color: var(--ink); font: 16px/1.6 var(--font); }
img { max-width: 100%; display: block; }
a { color: inherit; }
.container { width: min(1120px, 92vw); margin: 0 auto; }

/* ============ Nav ============ */
.nav { position: sticky; top: 0; z-index: 20; background: rgba(246, 244, 239, 0.86); backdrop-filter: blur(10px); border-bottom: 1px solid var(--line); }
.nav__inner { display: flex; align-items: center; justify-content: space-between; height: 64px; }
.brand { display: flex; align-items: center; gap: 10px; text-decoration: none; font-weight: 700; }
.brand__mark { width: 14px; height: 14px; border-radius: 4px; background: var(--accent); }
.nav__links { display: flex; gap: 18px; }
.nav__links a { text-decoration: none; color: var(--muted); }
.nav__links a:hover, .nav__links a.is-active { color: var(--ink); }
.nav__mode { display: flex; gap: 4px; padding: 3px; border: 1px solid var(--line); border-radius: 999px; }
.modeLink { padding: 4px 12px; border-radius: 999px; text-decoration: none; color: var(--muted); font-size: 13px; }
.modeLink.is-active { background: var(--ink); color: #fff; }
.nav__toggle { display: none; border: 1px solid var(--line); background: var(--surface); border-radius: 999px; padding: 6px 14px; }

/* ============ Buttons, tags ============ */
.actions { display: flex; flex-wrap: wrap; gap: 10px; margin-top: 14px; }
.btn { display: inline-flex; align-items: center; padding: 8px 16px; border-radius: 999px; border: 1px solid var(--line); background: var(--surface); text-decoration: none; font-size: 14px; cursor: pointer; }
.btn--primary { background: var(--ink); border-color: var(--ink); color: #fff; }
.btn--plain { cursor: default; }
.tags { display: flex; flex-wrap: wrap; gap: 6px; list-style: none; padding: 0; margin: 8px 0; }
.tag { padding: 2px 10px; border-radius: 999px; background: var(--accent-soft); color: var(--accent); font-size: 13px; }
.contact { display: inline-flex; gap: 6px; font-size: 14px; }
.contact__label { color: var(--muted); }

/* ============ Hero ============ */
.heroDash { padding: 56px 0 24px; }
.heroDash__wrap { position: relative; overflow: hidden; border-radius: 28px; background: var(--surface); box-shadow: var(--shadow); padding: 48px; }
.heroDash__orbs .orb { position: absolute; border-radius: 50%; filter: blur(40px); opacity: 0.5; }
.orb--a { width: 220px; height: 220px; background: #c7d7fe; top: -60px; right: 10%; }
.orb--b { width: 160px; height: 160px; background: #fde2c7; bottom: -40px; left: 20%; }
.orb--c { width: 120px; height: 120px; background: #d1fae5; top: 30%; right: 35%; }
.heroDash__grid { position: relative; display: grid; grid-template-columns: 1.4fr 1fr; gap: 32px; align-items: center; }
.heroDash__kicker { color: var(--accent); font-weight: 600; letter-spacing: 0.04em; text-transform: uppercase; font-size: 13px; }
.heroDash__title { font-size: clamp(32px, 5vw, 52px); line-height: 1.1; margin: 10px 0; }
.heroDash__subtitle, .heroDash__bio { color: var(--muted); }
.heroDash__portrait img { border-radius: 24px; aspect-ratio: 4 / 5; object-fit: cover; width: 100%; }

/* ============ Classic hero ============ */
.hero { padding: 56px 0 24px; }
.hero__wrap { border-radius: 28px; background: var(--surface); box-shadow: var(--shadow); padding: 48px; }
.hero__grid { display: grid; grid-template-columns: 1.4fr 1fr; gap: 32px; align-items: center; }
.hero__title { font-size: clamp(30px, 4.5vw, 48px); line-height: 1.1; margin: 10px 0; }
.hero__subtitle { color: var(--muted); }
.hero__art img { border-radius: 24px; aspect-ratio: 4 / 5; object-fit: cover; width: 100%; }

/* ============ Dashboard ============ */
.bento { display: grid; grid-template-columns: repeat(6, 1fr); gap: 16px; }
.tile { background: var(--surface); border-radius: var(--radius); box-shadow: var(--shadow); padding: 20px; grid-column: span 2; }
.tile--profile, .tile--research { grid-column: span 3; }
.tile__title { font-size: 13px; color: var(--muted); text-transform: uppercase; letter-spacing: 0.05em; margin-bottom: 10px; }
.tileProfile__name { font-size: 22px; font-weight: 700; }
.kpi__label { color: var(--muted); font-size: 13px; }
.kpi__value { font-size: 36px; font-weight: 800; }
.kpi__note { color: var(--muted); font-size: 13px; }
.spark { width: 100%; height: 56px; }
.spark__line { fill: none; stroke: var(--accent); stroke-width: 2; }
.aiHeadline { font-weight: 700; font-size: 18px; }
.aiSub { color: var(--muted); }
.aiStrip { display: flex; gap: 8px; margin-top: 10px; }
.aiStrip img { width: 72px; height: 48px; object-fit: cover; border-radius: 8px; }
.pmBoard { list-style: none; padding: 0; margin: 0; }
.pmItem { display: flex; justify-content: space-between; gap: 8px; padding: 6px 0; border-bottom: 1px dashed var(--line); }
.pmPill { font-size: 12px; padding: 1px 8px; border-radius: 999px; background: var(--line); }
.pmPill--done { background: #d1fae5; }
.pmPill--doing { background: #fef3c7; }
.mag { list-style: none; padding: 0; margin: 0; }
.magRow { padding: 6px 0; border-bottom: 1px solid var(--line); }
.magMeta { color: var(--muted); font-size: 13px; }
.coverStack { display: flex; }
.cover { margin-right: -18px; border: 0; padding: 0; background: none; cursor: zoom-in; }
.cover img { width: 96px; height: 128px; object-fit: cover; border-radius: 10px; box-shadow: var(--shadow); }

/* ============ Pie ============ */
.pie { display: flex; gap: 16px; align-items: center; margin: 12px 0 0; }
.pie svg { width: 120px; height: 120px; flex: none; }
.pie__slice { cursor: pointer; transition: opacity 0.2s; }
.pie__icon { font-size: 11px; fill: #fff; text-anchor: middle; dominant-baseline: middle; pointer-events: none; }
.pie__legend { list-style: none; padding: 0; margin: 0; font-size: 13px; }
.pie__legendItem { display: flex; gap: 6px; align-items: baseline; cursor: pointer; transition: opacity 0.2s; }
.pie__swatch { width: 10px; height: 10px; border-radius: 3px; display: inline-block; }
.pie__value { color: var(--muted); }
.pie__note { color: var(--muted); font-size: 12px; }
.is-dim { opacity: 0.3; }
.pie__legendItem.is-active { font-weight: 700; }

/* ============ Sections, cards ============ */
.section { padding: 48px 0; }
.section__head { margin-bottom: 20px; }
.section__head--sub { margin-top: 36px; }
.section__title { margin: 0; font-size: 28px; }
.section__desc { margin: 4px 0 0; color: var(--muted); }
.divider { height: 1px; background: var(--line); width: min(1120px, 92vw); margin: 0 auto; transform-origin: left; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 16px; }
.card { background: var(--surface); border-radius: var(--radius); box-shadow: var(--shadow); padding: 20px; }
.card--empty { border: 1px dashed var(--line); box-shadow: none; background: transparent; }
.card__title { margin: 0 0 6px; font-size: 18px; }
.card__meta { margin: 0; color: var(--muted); font-size: 14px; }
.card__desc { margin: 10px 0 0; }
.card__list { margin: 10px 0 0; padding-left: 18px; }
.card__media { margin: -20px -20px 14px; }
.imgBtn { border: 0; padding: 0; background: none; cursor: zoom-in; width: 100%; }
.card__media img { border-radius: var(--radius) var(--radius) 0 0; aspect-ratio: 4 / 3; object-fit: cover; width: 100%; }

/* ============ Secondary pages ============ */
.page2 { padding: 40px 0 8px; }
.page2__head { display: flex; gap: 24px; align-items: flex-start; }
.backBtn { white-space: nowrap; text-decoration: none; color: var(--muted); }
.page2__title { margin: 0; font-size: 36px; }
.page2__desc { color: var(--muted); margin: 6px 0 0; }

/* ============ Research paper ============ */
.featured { display: grid; grid-template-columns: 1fr 280px; gap: 20px; align-items: start; }
.featured__main { background: var(--surface); border-radius: var(--radius); box-shadow: var(--shadow); padding: 28px; }
.paper { position: relative; padding-left: 18px; }
.paperProgress { position: absolute; left: 0; top: 0; bottom: 0; width: 3px; background: var(--line); border-radius: 3px; }
.paperProgress__bar { width: 100%; height: 100%; background: var(--accent); transform: scaleY(0); transform-origin: top; }
.paperHint { color: var(--muted); font-size: 13px; }
.paperBlock { margin-top: 18px; }
.paperH { margin: 0 0 6px; font-size: 15px; text-transform: uppercase; letter-spacing: 0.04em; color: var(--muted); }
.paperSection { transition: opacity 0.3s; opacity: 0.55; }
.paperSection.is-active { opacity: 1; }
.paperFigures { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 12px; }
.paperFigure { margin: 0; }
.paperFigcap { font-size: 13px; color: var(--muted); margin-top: 6px; }
.paperFigTitle { color: var(--ink); font-weight: 600; }

/* ============ Timeline ============ */
.timeline { position: relative; display: grid; gap: 16px; grid-column: 1 / -1; }
.timelineItem { display: grid; grid-template-columns: 20px 1fr; gap: 12px; }
.timelineDot { width: 12px; height: 12px; margin-top: 24px; border-radius: 50%; background: var(--accent); }
.timelineYear { font-size: 13px; color: var(--muted); }
.timelineCard { background: var(--surface); border-radius: var(--radius); box-shadow: var(--shadow); padding: 20px; transition: box-shadow 0.3s, transform 0.3s; }
.timelineCard.is-current { box-shadow: 0 0 0 2px var(--accent), var(--shadow); transform: translateX(4px); }
.timelineMetric { font-weight: 800; font-size: 22px; color: var(--accent); margin: 8px 0; }

/* ============ Cases ============ */
.cases { display: grid; gap: 16px; grid-column: 1 / -1; }
.casePair { display: grid; grid-template-columns: 1fr 1.4fr; gap: 16px; }
.caseKind { font-size: 12px; text-transform: uppercase; color: var(--accent); margin-right: 8px; }
.caseYear { font-size: 12px; color: var(--muted); }
.caseDetail { cursor: pointer; }
.caseDetail:hover { transform: translateY(-2px); }
.caseDetail__more { display: inline-block; margin-top: 10px; color: var(--accent); font-weight: 600; }

/* ============ Overlays ============ */
.modal, .drawer { position: fixed; inset: 0; z-index: 50; visibility: hidden; pointer-events: none; }
.modal--open, .drawer--open { visibility: visible; pointer-events: auto; }
.modal__backdrop, .drawer__backdrop { position: absolute; inset: 0; background: rgba(10, 10, 20, 0.55); opacity: 0; transition: opacity 0.2s; }
.modal--open .modal__backdrop, .drawer--open .drawer__backdrop { opacity: 1; }
.modal__panel { position: absolute; top: 50%; left: 50%; transform: translate(-50%, -50%); max-width: 92vw; max-height: 90vh; background: var(--surface); border-radius: var(--radius); padding: 16px; }
.modal__img { max-height: 76vh; margin: 0 auto; border-radius: 10px; }
.modal__caption { color: var(--muted); font-size: 14px; margin-top: 8px; text-align: center; }
.modal__close, .drawer__close { border: 1px solid var(--line); background: var(--surface); border-radius: 999px; padding: 4px 12px; cursor: pointer; float: right; }
.drawer__panel { position: absolute; top: 0; right: 0; bottom: 0; width: min(560px, 100vw); background: var(--surface); padding: 24px; overflow-y: auto; transform: translateX(100%); transition: transform 0.25s ease; }
.drawer--open .drawer__panel { transform: none; }
.drawer__top { display: flex; justify-content: space-between; align-items: center; gap: 12px; margin-bottom: 16px; }
.drawer__title { font-weight: 700; font-size: 20px; }
.drawerMeta { color: var(--muted); }

/* ============ Footer ============ */
.footer { border-top: 1px solid var(--line); padding: 24px 0; margin-top: 48px; color: var(--muted); }
.footer__inner { display: flex; justify-content: space-between; align-items: center; }
.toTop { border: 0; background: none; color: inherit; cursor: pointer; }

/* ============ Motion ============ */
[data-motion].is-pending { opacity: 0; }
[data-motion] { transition: opacity 0.6s ease, transform 0.6s ease; }

/* ============ Responsive ============ */
@media (max-width: 860px) {
  .nav__links { display: none; position: absolute; top: 64px; left: 0; right: 0; flex-direction: column; background: var(--bg); padding: 16px 4vw; border-bottom: 1px solid var(--line); }
  .nav--open .nav__links { display: flex; }
  .nav__toggle { display: inline-block; }
  .heroDash__wrap { padding: 28px; }
  .heroDash__grid, .hero__grid, .featured, .casePair { grid-template-columns: 1fr; }
  .bento { grid-template-columns: 1fr; }
  .tile, .tile--profile, .tile--research { grid-column: auto; }
  .page2__head { flex-direction: column; gap: 8px; }
}

@media (prefers-reduced-motion: reduce) {
  [data-motion] { transition: none; }
  [data-motion].is-pending { opacity: 1; }
}
`

// ClientScript is served as client.js. It mirrors the server-side overlay and
// delegation rules, plays the motion plan and listens for live reload.
const ClientScript = `(function() {
  'use strict';

  var MODAL_ID = 'imgModal';
  var DRAWER_ID = 'sideDrawer';

  var modalMarkup =
    '<div id="imgModal" class="modal">' +
    '<div class="modal__backdrop" data-close="true" aria-hidden="true"></div>' +
    '<div class="modal__panel" role="dialog" aria-modal="true" aria-label="Image preview">' +
    '<button class="modal__close" type="button" aria-label="Close" data-close="true">Close</button>' +
    '<img class="modal__img" alt=""><div class="modal__caption"></div></div></div>';

  var drawerMarkup =
    '<div id="sideDrawer" class="drawer">' +
    '<div class="drawer__backdrop" data-close="true" aria-hidden="true"></div>' +
    '<aside class="drawer__panel" role="dialog" aria-modal="true" aria-label="Details">' +
    '<div class="drawer__top"><div class="drawer__title" id="drawerTitle">Details</div>' +
    '<button class="drawer__close" type="button" aria-label="Close" data-close="true">Close</button></div>' +
    '<div class="drawer__content" id="drawerContent"></div></aside></div>';

  // ============ Overlays ============
  function ensure(id, markup) {
    var el = document.getElementById(id);
    if (el) return el;
    document.body.insertAdjacentHTML('beforeend', markup);
    return document.getElementById(id);
  }

  function openModal(src, alt, caption) {
    var m = ensure(MODAL_ID, modalMarkup);
    var img = m.querySelector('.modal__img');
    img.src = src;
    img.alt = alt || '';
    m.querySelector('.modal__caption').textContent = caption || '';
    m.classList.add('modal--open');
    document.body.style.overflow = 'hidden';
  }

  function openDrawer(title, body) {
    var d = ensure(DRAWER_ID, drawerMarkup);
    d.querySelector('#drawerTitle').textContent = title || 'Details';
    var content = d.querySelector('#drawerContent');
    content.innerHTML = '';
    if (body) content.appendChild(body);
    d.classList.add('drawer--open');
    document.body.style.overflow = 'hidden';
  }

  function close(id, cls) {
    var el = document.getElementById(id);
    if (el) el.classList.remove(cls);
    if (!document.querySelector('.modal--open, .drawer--open')) {
      document.body.style.overflow = '';
    }
  }

  // ============ Delegation ============
  function openCase(el) {
    var idx = parseInt(el.getAttribute('data-case-index'), 10);
    if (isNaN(idx)) return false;
    var holder = el.closest('[data-cases]');
    if (!holder) return false;
    var cases;
    try {
      cases = JSON.parse(holder.getAttribute('data-cases') || '[]');
    } catch (e) {
      return false;
    }
    var found = null;
    for (var i = 0; i < cases.length; i++) {
      if (cases[i].index === idx) found = cases[i];
    }
    if (!found) return false;
    var tmpl = holder.querySelector('template[data-case-detail="' + idx + '"]');
    openDrawer(found.title, tmpl ? tmpl.content.cloneNode(true) : null);
    return true;
  }

  function focusSlice(el) {
    var chart = el.closest('[data-pie]');
    if (!chart) return false;
    var idx = el.getAttribute('data-pie-slice');
    var entries = chart.querySelectorAll('[data-pie-slice]');
    var active = chart.querySelector('[data-pie-slice].is-active');
    var wasActive = active && active.getAttribute('data-pie-slice') === idx;
    entries.forEach(function(e) {
      e.classList.remove('is-active', 'is-dim');
      if (wasActive) return;
      e.classList.add(e.getAttribute('data-pie-slice') === idx ? 'is-active' : 'is-dim');
    });
    return true;
  }

  document.addEventListener('click', function(ev) {
    var t = ev.target;
    if (!(t instanceof Element)) return;

    var closer = t.closest('[data-close="true"]');
    if (closer) {
      if (closer.closest('#' + MODAL_ID)) return close(MODAL_ID, 'modal--open');
      if (closer.closest('#' + DRAWER_ID)) return close(DRAWER_ID, 'drawer--open');
    }
    var img = t.closest('[data-img]');
    if (img) {
      var src = (img.getAttribute('data-img') || '').trim();
      if (src) {
        ev.preventDefault();
        openModal(src, img.getAttribute('data-alt'), img.getAttribute('data-caption'));
      }
      return;
    }
    var trigger = t.closest('[data-drawer-kind]');
    if (trigger) {
      if (openCase(trigger)) ev.preventDefault();
      return;
    }
    var slice = t.closest('[data-pie-slice]');
    if (slice) focusSlice(slice);
  });

  document.addEventListener('keydown', function(ev) {
    if (ev.key === 'Escape') {
      close(MODAL_ID, 'modal--open');
      close(DRAWER_ID, 'drawer--open');
      return;
    }
    if ((ev.key === 'Enter' || ev.key === ' ') && ev.target instanceof Element && ev.target.matches('[data-drawer-kind]')) {
      ev.preventDefault();
      openCase(ev.target);
    }
  });

  // ============ Chrome ============
  var toggle = document.getElementById('navToggle');
  if (toggle) {
    toggle.addEventListener('click', function() {
      var nav = document.getElementById('siteNav');
      var open = nav.classList.toggle('nav--open');
      toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
  }
  var toTop = document.getElementById('toTop');
  if (toTop) {
    toTop.addEventListener('click', function() { window.scrollTo({ top: 0, behavior: 'smooth' }); });
  }

  // ============ Motion plan ============
  function targets(ids) {
    return (ids || []).map(function(id) {
      return document.querySelector('[data-motion="' + id + '"]');
    }).filter(Boolean);
  }

  // "top 80%" -> fraction of the viewport height.
  function edge(spec, fallback) {
    var m = /(\d+)%/.exec(spec || '');
    return m ? parseInt(m[1], 10) / 100 : fallback;
  }

  function progress(el, start, end) {
    var r = el.getBoundingClientRect();
    var vh = window.innerHeight;
    var from = vh * start;
    var total = r.height + from - vh * end;
    if (total <= 0) return r.top < from ? 1 : 0;
    return Math.min(1, Math.max(0, (from - r.top) / total));
  }

  function playPlan() {
    var node = document.getElementById('motionPlan');
    if (!node) return;
    var plan;
    try {
      plan = JSON.parse(node.textContent);
    } catch (e) {
      return;
    }
    var reduced = window.matchMedia && window.matchMedia('(prefers-reduced-motion: reduce)').matches;
    var scrolled = [];

    (plan.effects || []).forEach(function(fx) {
      var els = targets(fx.targets);
      var trigger = document.querySelector('[data-motion="' + fx.trigger + '"]') || els[0];
      if (!trigger || !els.length) return;
      if (fx.media && window.matchMedia && !window.matchMedia(fx.media).matches) return;

      switch (fx.kind) {
      case 'reveal':
        if (reduced || !('IntersectionObserver' in window)) return;
        els.forEach(function(el, i) {
          el.classList.add('is-pending');
          el.style.transitionDelay = ((fx.stagger || 0) * i) + 's';
          el.style.transform = 'translateY(' + (fx.y || 0) + 'px)' + (fx.scale ? ' scale(' + fx.scale + ')' : '');
        });
        var io = new IntersectionObserver(function(entries) {
          entries.forEach(function(entry) {
            if (!entry.isIntersecting) return;
            els.forEach(function(el) {
              el.classList.remove('is-pending');
              el.style.transform = '';
            });
            io.disconnect();
          });
        }, { rootMargin: '0px 0px -' + Math.round((1 - edge(fx.start, 0.8)) * 100) + '% 0px' });
        io.observe(trigger);
        break;
      case 'scrub':
        scrolled.push(function() {
          var p = progress(trigger, edge(fx.start, 0.25), edge(fx.end, 0.25));
          els.forEach(function(el) { el.style.transform = 'scaleY(' + p + ')'; });
        });
        break;
      case 'fadeOut':
        scrolled.push(function() {
          var p = progress(trigger, edge(fx.start, 0.25), edge(fx.end, 0.1));
          els.forEach(function(el) { el.style.opacity = String(1 - p); });
        });
        break;
      case 'toggleClass':
      case 'highlight':
        scrolled.push(function() {
          var r = trigger.getBoundingClientRect();
          var vh = window.innerHeight;
          var on = r.top < vh * edge(fx.start, 0.55) && r.bottom > vh * edge(fx.end, 0.55);
          els.forEach(function(el) { el.classList.toggle(fx.className, on); });
        });
        break;
      case 'pin':
        els.forEach(function(el) {
          el.style.position = 'sticky';
          el.style.top = Math.round(edge(fx.start, 0.14) * 100) + 'vh';
        });
        break;
      }
    });

    if (!scrolled.length) return;
    var ticking = false;
    function onScroll() {
      if (ticking) return;
      ticking = true;
      window.requestAnimationFrame(function() {
        scrolled.forEach(function(fn) { fn(); });
        ticking = false;
      });
    }
    window.addEventListener('scroll', onScroll, { passive: true });
    window.addEventListener('resize', onScroll);
    onScroll();
  }

  // ============ Live reload ============
  function listenReload() {
    var path = document.body.getAttribute('data-reload');
    if (!path || !('WebSocket' in window)) return;
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + path);
    ws.onmessage = function(ev) {
      if (ev.data === 'reload') location.reload();
    };
    ws.onclose = function() {
      setTimeout(listenReload, 1500);
    };
  }

  playPlan();
  listenReload();
})();
`
