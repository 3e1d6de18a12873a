package render

const baseCSS = `*{box-sizing:border-box}
body{font-family:"Helvetica Neue",Arial,sans-serif;margin:0;color:#111;background:#fff}
*{-webkit-print-color-adjust:exact;print-color-adjust:exact;color-adjust:exact}
.notice{background:#fff4d6;border:1px solid #e0b100;padding:6px 10px;margin:8px}
.notice p{margin:2px 0}
table{border-collapse:collapse}
`

const reportCSS = baseCSS + `@page{size:A4;margin:10mm}
.strip{display:flex;align-items:center;justify-content:space-between;padding:8px 12px;background:#1b2a4a;color:#fff}
.strip .team{display:flex;align-items:center;gap:8px;font-size:18px;font-weight:700}
.strip .logo{height:56px}
.strip .when{text-align:center;display:flex;flex-direction:column;font-size:14px}
.leaders{display:grid;grid-template-columns:repeat(3,1fr);gap:6px;margin:8px}
.stat-box{border:1px solid #999;padding:4px 6px;page-break-inside:avoid}
.stat-box h3{margin:0 0 4px;font-size:13px;text-transform:uppercase}
.stat-box ol{margin:0;padding-left:18px;font-size:12px}
.stat-box .value{float:right;font-weight:700}
.card{border:1px solid #444;margin:8px;page-break-inside:avoid}
.card-head{color:#fff;padding:4px 8px;font-weight:700;font-size:15px}
.card-body{display:flex;gap:8px;padding:6px}
.portrait{height:110px}
.bio{display:grid;grid-template-columns:auto auto;gap:0 6px;margin:0;font-size:12px}
.bio dt{font-weight:700}
.bio dd{margin:0}
.grid{font-size:11px;margin-left:auto}
.grid th,.grid td{border:1px solid #bbb;padding:2px 4px;text-align:center}
.notes{width:100%;font-size:12px}
.notes td{border-top:1px solid #ccc;height:20px;width:50%;padding:2px 6px}
.notes .emphasis{font-weight:700;color:#a00000}
.team-average{margin:8px}
.team-average h2,.facts h2{font-size:15px;margin:4px 0}
.facts{display:grid;grid-template-columns:repeat(3,1fr);gap:6px;margin:8px}
.key-facts h3{margin:0;font-size:13px}
.key-facts table{width:100%;font-size:12px}
.key-facts th,.key-facts td{border:1px solid #bbb;padding:2px 4px;text-align:left;vertical-align:top}
`

const liveCSS = baseCSS + `.score{display:flex;justify-content:center;align-items:center;gap:24px;padding:12px;background:#1b2a4a;color:#fff}
.score .pts{font-size:42px;font-weight:700}
.score .state{text-align:center;font-size:14px}
.box{display:grid;grid-template-columns:1fr 1fr;gap:12px;margin:12px}
.box table{width:100%;font-size:13px}
.box th,.box td{border-bottom:1px solid #ddd;padding:2px 4px;text-align:right}
.box td.name,.box th.name{text-align:left}
.box tr.starter td.name{font-weight:700}
`

// overlayCSS hides surrounding chrome so the page can be keyed as a browser
// source.
const overlayCSS = baseCSS + `html,body{background:transparent!important;overflow:hidden}
header,footer,nav,.sidebar,.toolbar,[data-chrome]{display:none!important}
.overlay{font-family:"Arial Black",Arial,sans-serif;color:#fff;display:inline-block;padding:8px 14px;background:rgba(20,30,55,.88);border-radius:6px}
.overlay h1{font-size:22px;margin:0 0 6px}
.overlay .logo{height:48px;vertical-align:middle;margin-right:8px}
.five{display:flex;gap:10px}
.five .slot{min-width:120px;text-align:center}
.five .nr{font-size:26px;display:block}
.standings td,.standings th,.compare td,.compare th{padding:2px 8px;text-align:right}
.standings td.team,.standings th.team,.compare td.label{text-align:left}
.compare .label{color:#cfd6e6}
.potg .big{font-size:30px}
.potg dl{display:grid;grid-template-columns:repeat(4,auto);gap:2px 12px;margin:6px 0 0}
.potg dd{margin:0;font-size:20px}
`
