package httpserver

// Single-page dashboard. All state lives server-side; the page only calls
// the JSON API and re-renders on every refresh.
const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <title>Crypto Risk Dashboard</title>
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
  <style>
    body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f5f6fa; color: #222; }
    header { background: #1e2533; color: #fff; padding: 14px 24px; }
    header h1 { margin: 0; font-size: 20px; }
    header small { color: #9aa4b5; }
    main { padding: 20px 24px; max-width: 1100px; margin: 0 auto; }
    .controls { display: flex; gap: 12px; align-items: flex-start; margin-bottom: 16px; }
    select { min-width: 220px; min-height: 110px; }
    button { padding: 8px 16px; border: 0; border-radius: 4px; background: #2563eb; color: #fff; cursor: pointer; }
    button:disabled { background: #9aa4b5; }
    #banner { display: none; padding: 10px 14px; border-radius: 4px; margin-bottom: 14px; }
    #banner.error { display: block; background: #fde8e8; color: #9b1c1c; }
    #banner.ok { display: block; background: #def7ec; color: #03543f; }
    .cards { display: flex; flex-wrap: wrap; gap: 14px; margin-bottom: 24px; }
    .card { background: #fff; border-radius: 6px; padding: 14px 18px; min-width: 180px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
    .card h3 { margin: 0 0 6px; font-size: 15px; }
    .card .price { font-size: 22px; font-weight: 600; }
    .card .chg { font-size: 13px; }
    .chg.up { color: #047857; } .chg.down { color: #b91c1c; }
    .risk { display: inline-block; margin-top: 8px; padding: 2px 8px; border-radius: 10px; font-size: 12px; font-weight: 600; }
    .risk.LOW { background: #def7ec; color: #03543f; }
    .risk.MEDIUM { background: #fef3c7; color: #92400e; }
    .risk.HIGH { background: #fde8e8; color: #9b1c1c; }
    section { background: #fff; border-radius: 6px; padding: 16px 18px; margin-bottom: 24px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
    table { border-collapse: collapse; width: 100%; font-size: 13px; }
    th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #eee; }
    details { font-size: 14px; }
    .muted { color: #6b7280; font-size: 14px; }
  </style>
</head>
<body>
<header>
  <h1>Real-Time Crypto Risk &amp; Price Dashboard</h1>
  <small>Live prices with risk analysis from the CoinGecko API</small>
</header>
<main>
  <div class="controls">
    <select id="coins" multiple></select>
    <button id="refresh">Fetch latest data</button>
  </div>
  <div id="banner"></div>

  <h2>Current Market Snapshot</h2>
  <div class="cards" id="cards"><span class="muted">No live data yet. Select coins and fetch.</span></div>

  <section>
    <h2>Price History (Current Session)</h2>
    <canvas id="chart" height="90"></canvas>
    <p class="muted" id="chart-hint">History appears after fetching data more than once.</p>
  </section>

  <section>
    <h2>Raw Data Table</h2>
    <table id="raw">
      <thead><tr><th>Time (UTC)</th><th>Coin</th><th>Price</th><th>24h Change (%)</th><th>Risk</th></tr></thead>
      <tbody></tbody>
    </table>
  </section>

  <section>
    <details>
      <summary>How this dashboard works</summary>
      <ol>
        <li>Select coins and press <b>Fetch latest data</b>.</li>
        <li>The server calls the CoinGecko API once, best effort, with a 10s timeout.</li>
        <li>Each result is labeled LOW / MEDIUM / HIGH from its absolute 24h change (5% and 10% thresholds).</li>
        <li>Every fetch is appended to an in-memory session history; press the button repeatedly to build the chart.</li>
        <li>Nothing is persisted: restarting the server starts an empty session.</li>
      </ol>
    </details>
  </section>
</main>
<script>
const coinsEl = document.getElementById('coins');
const banner = document.getElementById('banner');
let chart = null;

async function getJSON(url) {
  const res = await fetch(url);
  if (!res.ok) throw new Error(await errMessage(res));
  return res.json();
}

async function errMessage(res) {
  try { const b = await res.json(); return b.message || res.statusText; }
  catch { return res.statusText; }
}

function note(kind, msg) {
  banner.className = kind;
  banner.textContent = msg;
}

function selectedNames() {
  return Array.from(coinsEl.selectedOptions).map(o => o.textContent);
}

async function loadAssets() {
  const assets = await getJSON('/api/assets');
  for (const a of assets) {
    const opt = document.createElement('option');
    opt.value = a.id;
    opt.textContent = a.display_name;
    opt.selected = ['bitcoin', 'ethereum', 'solana'].includes(a.id);
    coinsEl.appendChild(opt);
  }
}

function renderCards(rows) {
  const cards = document.getElementById('cards');
  cards.innerHTML = '';
  if (!rows.length) {
    cards.innerHTML = '<span class="muted">No live data yet. Select coins and fetch.</span>';
    return;
  }
  for (const r of rows) {
    const dir = r.change_24h >= 0 ? 'up' : 'down';
    const card = document.createElement('div');
    card.className = 'card';
    card.innerHTML = '<h3></h3>' +
      '<div class="price"></div>' +
      '<div class="chg ' + dir + '"></div>' +
      '<span class="risk ' + r.risk + '">Risk: ' + r.risk + '</span>';
    card.querySelector('h3').textContent = r.asset;
    card.querySelector('.price').textContent = '$' + r.price.toLocaleString();
    card.querySelector('.chg').textContent = r.change_24h.toFixed(2) + '% (24h)';
    cards.appendChild(card);
  }
}

function renderChart(series) {
  const hasData = series.some(s => s.points.length > 0);
  document.getElementById('chart-hint').style.display = hasData ? 'none' : 'block';
  const datasets = series.map(s => ({
    label: s.asset,
    data: s.points.map(p => ({ x: new Date(p.timestamp).toLocaleTimeString(), y: p.price })),
  }));
  if (chart) chart.destroy();
  chart = new Chart(document.getElementById('chart'), {
    type: 'line',
    data: { datasets },
    options: { animation: false, parsing: true },
  });
}

function renderTable(obs) {
  const body = document.querySelector('#raw tbody');
  body.innerHTML = '';
  for (const o of obs) {
    const tr = document.createElement('tr');
    for (const v of [new Date(o.timestamp).toISOString(), o.asset, o.price, o.change_24h.toFixed(4), o.risk]) {
      const td = document.createElement('td');
      td.textContent = v;
      tr.appendChild(td);
    }
    body.appendChild(tr);
  }
}

async function renderAll() {
  const names = selectedNames().join(',');
  renderChart(await getJSON('/api/series?assets=' + encodeURIComponent(names)));
  renderTable(await getJSON('/api/observations?limit=100'));
}

async function refresh() {
  const btn = document.getElementById('refresh');
  btn.disabled = true;
  try {
    const ids = Array.from(coinsEl.selectedOptions).map(o => o.value);
    const res = await fetch('/api/refresh', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ ids }),
    });
    if (!res.ok) throw new Error(await errMessage(res));
    const out = await res.json();
    renderCards(out.snapshot);
    note('ok', 'Data refreshed: ' + out.fetched + ' coins.');
    await renderAll();
  } catch (e) {
    note('error', 'Error fetching prices: ' + e.message);
  } finally {
    btn.disabled = false;
  }
}

document.getElementById('refresh').addEventListener('click', refresh);
loadAssets().then(async () => {
  renderCards(await getJSON('/api/snapshot'));
  await renderAll();
}).catch(e => note('error', e.message));
</script>
</body>
</html>`
