package page

// skeleton is the fixed landing page layout. It is executed with text/template:
// every text value in view is escaped before execution, and URL and style
// values are inserted as given.
const skeleton = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Name}}</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
{{- if .FontImports}}
  {{.FontImports}}
{{- end}}
  {{.Style.FontImport}}
  <style>
    * {
      box-sizing: border-box;
    }

    body {
      margin: 0;
      font-family: {{.Style.BodyFont}};
      background: {{.Style.BackgroundColor}};
      color: {{.Style.TextColor}};
      line-height: 1.6;
    }

    .title-section {
      text-align: center;
      padding: 3rem 1rem 2rem;
      background: {{.Style.HeaderBackground}};
      position: relative;
      overflow: hidden;
    }

    .title-section h1 {
      font-family: {{.Style.TitleFont}};
      font-size: clamp(2.5rem, 5vw, 4rem);
      font-weight: 700;
      margin: 0;
      color: {{.Style.PrimaryColor}};
      text-shadow: 0 2px 4px {{.Style.PrimaryColor}}20;
      position: relative;
      z-index: 1;
      {{.Style.TitleAnimation}}
    }

    .hero {
      background: url('{{.BannerURL}}') center/cover no-repeat;
      height: 70vh;
      position: relative;
      overflow: hidden;
    }

    .hero::after {
      content: '';
      position: absolute;
      top: 0;
      left: 0;
      right: 0;
      bottom: 0;
      background: {{.Style.HeroOverlay}};
      pointer-events: none;
    }

    .tagline {
      text-align: center;
      font-size: 1.3rem;
      font-weight: 500;
      color: {{.Style.SecondaryColor}};
      margin: 2rem auto;
      max-width: 700px;
      padding: 2rem 1rem;
      background: {{.Style.TaglineBackground}};
      border-radius: 15px;
      border: 2px solid {{.Style.AccentColor}}40;
      box-shadow: 0 4px 15px {{.Style.PrimaryColor}}20;
      backdrop-filter: blur(10px);
      {{.Style.TaglineAnimation}}
    }

    .gallery-section {
      background: {{.Style.SectionBackground}};
      padding: 4rem 2rem;
      margin: 3rem 0;
      position: relative;
    }

    .gallery-section::before,
    .gallery-section::after {
      content: '';
      position: absolute;
      left: 0;
      right: 0;
      height: 3px;
      background: linear-gradient(90deg, transparent, {{.Style.AccentColor}}, transparent);
    }

    .gallery-section::before {
      top: 0;
    }

    .gallery-section::after {
      bottom: 0;
    }

    .gallery-title {
      font-family: {{.Style.TitleFont}};
      font-size: 2.5rem;
      font-weight: 600;
      text-align: center;
      color: {{.Style.PrimaryColor}};
      margin-bottom: 2rem;
      text-shadow: 0 2px 4px {{.Style.PrimaryColor}}20;
    }

    .gallery {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
      gap: 20px;
      max-width: 1200px;
      margin: 0 auto;
    }

    .gallery img {
      width: 100%;
      height: 200px;
      object-fit: cover;
      border-radius: 15px;
      box-shadow: 0 8px 25px {{.Style.PrimaryColor}}30;
      transition: transform 0.3s ease, box-shadow 0.3s ease;
      border: 3px solid {{.Style.AccentColor}}40;
      {{.Style.ImageAnimation}}
    }

    .gallery img:hover {
      transform: translateY(-5px) scale(1.02);
      box-shadow: 0 15px 35px {{.Style.PrimaryColor}}40;
    }

    .info {
      text-align: center;
      padding: 3rem 2rem;
      background: {{.Style.InfoBackground}};
      margin: 2rem auto;
      border-radius: 20px;
      max-width: 800px;
      border: 2px solid {{.Style.AccentColor}}30;
    }

    .info-title {
      font-family: {{.Style.TitleFont}};
      font-size: 2rem;
      font-weight: 600;
      color: {{.Style.PrimaryColor}};
      margin-bottom: 2rem;
      text-shadow: 0 2px 4px {{.Style.PrimaryColor}}20;
    }

    .info p {
      margin: 15px 0;
      font-size: 1.1rem;
      font-weight: 400;
      color: {{.Style.TextColor}};
    }

    .info strong {
      color: {{.Style.PrimaryColor}};
      font-weight: 600;
    }

    .map-container {
      margin: 2.5rem auto;
      max-width: 700px;
      text-align: center;
      padding: 0 1rem;
    }

    .map-container iframe {
      width: 100%;
      height: 350px;
      border-radius: 15px;
      box-shadow: 0 10px 30px {{.Style.PrimaryColor}}30;
      border: 3px solid {{.Style.AccentColor}}50;
    }

    .socials {
      display: flex;
      justify-content: center;
      gap: 15px;
      margin-bottom: 2rem;
      flex-wrap: wrap;
      padding: 0 1rem;
    }

    .social-link {
      display: inline-flex;
      align-items: center;
      gap: 8px;
      padding: 12px 20px;
      text-decoration: none;
      color: white;
      font-weight: 600;
      font-family: {{.Style.BodyFont}};
      border-radius: 25px;
      transition: all 0.3s ease;
      box-shadow: 0 4px 15px rgba(0, 0, 0, 0.3);
      border: 2px solid rgba(255, 255, 255, 0.2);
      {{.Style.SocialAnimation}}
    }

    .social-link:hover {
      transform: translateY(-3px) scale(1.05);
      box-shadow: 0 8px 25px rgba(0, 0, 0, 0.4);
      border-color: rgba(255, 255, 255, 0.4);
    }

    .social-facebook {
      background: linear-gradient(135deg, #1877F2, #0d5dbf);
    }
    .social-instagram {
      background: linear-gradient(135deg, #F56040, #E1306C, #C13584, #833AB4);
    }
    .social-x,
    .social-x--twitter- {
      background: linear-gradient(135deg, #000000, #333333);
    }
    .social-youtube {
      background: linear-gradient(135deg, #FF0000, #cc0000);
    }
    .social-linkedin {
      background: linear-gradient(135deg, #0A66C2, #084d94);
    }
    .social-site-web {
      background: linear-gradient(135deg, #10B981, #059669);
    }

    .social-icon {
      width: 22px;
      height: 22px;
      fill: currentColor;
      filter: drop-shadow(0 1px 2px rgba(0, 0, 0, 0.2));
    }

    footer {
      text-align: center;
      padding: 3rem 1rem;
      background: {{.Style.FooterBackground}};
      color: {{.Style.FooterTextColor}};
      margin-top: 4rem;
      position: relative;
      overflow: hidden;
    }

    footer::before {
      content: '';
      position: absolute;
      top: 0;
      left: 0;
      right: 0;
      height: 4px;
      background: linear-gradient(90deg, {{.Style.AccentColor}}, {{.Style.PrimaryColor}}, {{.Style.AccentColor}});
    }

    .footer-content p {
      margin: 0;
      font-size: 1rem;
      font-weight: 500;
      text-shadow: 0 1px 3px rgba(0, 0, 0, 0.5);
    }

    {{.Style.AdditionalCSS}}
{{.Style.CustomCSS}}
    @media (max-width: 768px) {
      .title-section {
        padding: 2rem 1rem;
      }

      .hero {
        height: 50vh;
      }

      .tagline {
        font-size: 1.1rem;
        margin: 1.5rem auto;
        padding: 1.5rem 1rem;
      }

      .gallery-section {
        padding: 3rem 1rem;
      }

      .gallery {
        grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
        gap: 15px;
      }

      .gallery img {
        height: 180px;
      }

      .info {
        padding: 2rem 1rem;
        margin: 1.5rem 1rem;
      }

      .social-link {
        padding: 10px 16px;
        font-size: 0.9rem;
      }

      .socials {
        gap: 10px;
        margin-bottom: 1.5rem;
      }
    }
  </style>
</head>
<body>
  <div class="title-section">
    <h1>{{.Name}}</h1>
  </div>

  <header class="hero"></header>

  <div class="tagline">
    <p>{{.Tagline}}</p>
  </div>

  <section class="gallery-section">
    <h2 class="gallery-title">Notre Galerie</h2>
    <div class="gallery">
{{- range .Images}}
      <img src="{{.}}" alt="photo">
{{- end}}
    </div>
  </section>

  <section class="info">
    <h2 class="info-title">Informations Pratiques</h2>
    <p><strong>Adresse :</strong> {{.Address}}</p>
{{- if .MapURL}}

    <div class="map-container">
      <iframe src="{{.MapURL}}" allowfullscreen="" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe>
    </div>
{{- end}}

    <p><strong>Téléphone :</strong> {{.Phone}}</p>
    <p><strong>Horaires :</strong><br>{{.Hours}}</p>
  </section>

  <footer>
    <div class="socials">
{{- range .Socials}}
      <a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="social-link social-{{.Class}}">
        {{.Icon}}
        {{.Name}}
      </a>
{{- end}}
    </div>

    <div class="footer-content">
      <p>Page générée avec ❤️ par <strong>EasyLandingWeb</strong></p>
    </div>
  </footer>
</body>
</html>
`
