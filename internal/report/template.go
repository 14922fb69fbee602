package report

// reportHTML is the self-contained report page. Everything inlines so
// the file can be mailed around or archived without assets.
const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}} — Edge Lab</title>
<style>
    :root {
        --bg: #10100e;
        --bg-card: #181815;
        --border: #3a3a32;
        --text: #e6e1d7;
        --text-dim: #9e988a;
        --accent: #e8a33d;
        --accent2: #5fb4a2;
        --profit: #3fb950;
        --loss: #f85149;
        --warn: #d29922;
    }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
        background: var(--bg);
        color: var(--text);
        line-height: 1.6;
    }
    .container { max-width: 860px; margin: 0 auto; padding: 24px; }
    header {
        background: var(--bg-card);
        border: 1px solid var(--border);
        border-radius: 8px;
        padding: 20px 24px;
        margin-bottom: 24px;
    }
    h1 { color: var(--accent); font-size: 22px; }
    h2 { color: var(--text); font-size: 16px; margin-bottom: 12px; }
    .crumb { color: var(--text-dim); font-size: 13px; }
    .badge {
        display: inline-block;
        padding: 1px 8px;
        border-radius: 10px;
        font-size: 12px;
        font-weight: 600;
        border: 1px solid var(--border);
    }
    .badge.open { color: var(--accent); }
    .badge.finished { color: var(--profit); }
    .badge.stale { color: var(--warn); }
    section {
        background: var(--bg-card);
        border: 1px solid var(--border);
        border-radius: 8px;
        padding: 20px 24px;
        margin-bottom: 24px;
    }
    .metrics { display: grid; grid-template-columns: repeat(auto-fit, minmax(130px, 1fr)); gap: 12px; }
    .metric { text-align: center; }
    .metric .value { font-size: 20px; font-weight: 700; }
    .metric .label { font-size: 12px; color: var(--text-dim); text-transform: uppercase; }
    .pos { color: var(--profit); }
    .neg { color: var(--loss); }
    .chart { width: 100%; height: auto; background: var(--bg); border-radius: 4px; }
    .nodata { color: var(--text-dim); font-style: italic; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th { color: var(--text-dim); text-align: left; padding: 6px 8px; border-bottom: 1px solid var(--border); }
    td { padding: 6px 8px; border-bottom: 1px solid var(--border); }
    footer { color: var(--text-dim); font-size: 12px; text-align: center; padding-bottom: 24px; }
</style>
</head>
<body>
<div class="container">
    <header>
        <p class="crumb">{{.System}} › {{.Variant}}</p>
        <h1>{{.Title}}
            <span class="badge {{.Run.Status}}">{{.Run.Status}}</span>
            {{if .Stale}}<span class="badge stale">analytics stale</span>{{end}}
        </h1>
        <p class="crumb">{{.Run.RunType}} · initial capital {{printf "%.0f" .Run.InitialCapital}}{{with .Run.CreatedAt}} · created {{.}}{{end}}</p>
    </header>

    <section>
        <h2>Headline metrics</h2>
        <div class="metrics">
            {{range .Cards}}
            <div class="metric">
                <div class="value {{.Class}}">{{.Value}}</div>
                <div class="label">{{.Label}}</div>
            </div>
            {{end}}
        </div>
    </section>

    <section>
        <h2>Equity</h2>
        {{.EquityChart}}
        <h2 style="margin-top:16px">Drawdown{{with .MaxDrawdown}} — max {{.}}{{end}}</h2>
        {{.DrawdownChart}}
    </section>

    <section>
        <h2>R-multiple distribution</h2>
        {{.HistogramChart}}
        {{with .Distribution}}
        <p class="crumb">p5 {{printf "%.2f" .P5}} · q1 {{printf "%.2f" .Q1}} · median {{printf "%.2f" .Median}} · q3 {{printf "%.2f" .Q3}} · skew {{printf "%.2f" $.Skewness}}</p>
        {{end}}
    </section>

    {{with .MonteCarlo}}
    <section>
        <h2>Monte Carlo</h2>
        <div class="metrics">
            <div class="metric"><div class="value">{{printf "%.2f%%" .MeanFinalReturn}}</div><div class="label">mean final</div></div>
            <div class="metric"><div class="value">{{printf "%.2f%%" .MedianFinalReturn}}</div><div class="label">median final</div></div>
            <div class="metric"><div class="value">{{printf "%.2f%%" .P5FinalReturn}}</div><div class="label">p5 final</div></div>
            <div class="metric"><div class="value">{{printf "%.2f%%" .P95FinalReturn}}</div><div class="label">p95 final</div></div>
            <div class="metric"><div class="value neg">{{printf "%.2f%%" .WorstCaseDD}}</div><div class="label">worst dd</div></div>
        </div>
    </section>
    {{end}}

    {{with .RiskOfRuin}}
    <section>
        <h2>Risk of ruin</h2>
        <div class="metrics">
            <div class="metric"><div class="value {{if ge .RuinProbability 0.05}}neg{{else}}pos{{end}}">{{printf "%.2f%%" (mulf .RuinProbability 100)}}</div><div class="label">ruin probability</div></div>
            <div class="metric"><div class="value">{{printf "%.2f" .MeanFinalCapital}}</div><div class="label">mean final capital</div></div>
            <div class="metric"><div class="value neg">{{printf "%.2f%%" (mulf .WorstCaseDrawdown 100)}}</div><div class="label">worst drawdown</div></div>
        </div>
    </section>
    {{end}}

    {{if .WalkForwardChart}}
    <section>
        <h2>Walk-forward <span class="badge">{{.Stability}}</span></h2>
        {{.WalkForwardChart}}
        <p class="crumb">train expectancy in amber, out-of-sample in teal · {{.DegradingNote}}</p>
    </section>
    {{end}}

    {{if .Kelly}}
    <section>
        <h2>Kelly sweep</h2>
        <table>
            <tr><th>fraction</th><th>mean final capital</th><th>ruin</th><th>mean max dd</th><th></th></tr>
            {{range .Kelly.AllResults}}
            <tr>
                <td>{{printf "%.3f" .Fraction}}</td>
                <td>{{printf "%.2f" .MeanFinalCapital}}</td>
                <td>{{printf "%.2f%%" (mulf .RuinProbability 100)}}</td>
                <td>{{printf "%.2f%%" (mulf .MeanMaxDrawdown 100)}}</td>
                <td>{{if $.IsGrowthOptimal .Fraction}}◆ growth-optimal{{else if $.IsSafe .Fraction}}◆ safe{{end}}</td>
            </tr>
            {{end}}
        </table>
    </section>
    {{end}}

    {{if .Regimes}}
    <section>
        <h2>Regimes</h2>
        <table>
            <tr><th>regime</th><th>trades</th><th>expectancy</th><th>volatility</th></tr>
            {{range .Regimes}}
            <tr>
                <td>{{.Label}}</td>
                <td>{{.Count}}</td>
                <td class="{{if gt .Expectancy 0.0}}pos{{else}}neg{{end}}">{{printf "%.3f" .Expectancy}}</td>
                <td>{{printf "%.3f" .Volatility}}</td>
            </tr>
            {{end}}
        </table>
    </section>
    {{end}}

    <footer>generated by edge-lab at {{.GeneratedAt}}</footer>
</div>
</body>
</html>
`
