package guide

// pageTemplate wraps the rendered guide.
const pageTemplate = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; line-height: 1.6; color: #1f2937; background: #f9fafb; margin: 0; }
    main { max-width: 820px; margin: 0 auto; padding: 40px 24px; background: #fff; min-height: 100vh; }
    h1, h2, h3 { color: #111827; }
    h2 { border-bottom: 1px solid #e5e7eb; padding-bottom: 6px; margin-top: 40px; }
    table { border-collapse: collapse; width: 100%; margin: 16px 0; }
    th, td { border: 1px solid #e5e7eb; padding: 8px 12px; text-align: left; vertical-align: top; }
    th { background: #f3f4f6; }
    code { background: #f3f4f6; padding: 2px 5px; border-radius: 4px; font-size: 0.9em; }
    pre { padding: 16px; border-radius: 8px; overflow-x: auto; }
    pre code { background: none; padding: 0; }
  </style>
</head>
<body>
  <main>
    {{.Content}}
  </main>
</body>
</html>`
