package style

// cssRule appends css when any keyword is contained in the lower-cased
// description. Rules are independent of each other and of the palette.
type cssRule struct {
	name     string
	keywords []string
	css      string
}

func (r cssRule) matches(text string) bool {
	return containsAny(text, r.keywords)
}

// RuleInfo describes an additive rule group for listings.
type RuleInfo struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Rules lists the additive rule groups in the order their blocks are emitted.
func Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(additiveRules))
	for _, r := range additiveRules {
		out = append(out, RuleInfo{Name: r.name, Keywords: r.keywords})
	}
	return out
}

// PaletteKeywords lists the keywords of each color group in priority order.
func PaletteKeywords() []RuleInfo {
	out := make([]RuleInfo, 0, len(paletteRules))
	for _, r := range paletteRules {
		out = append(out, RuleInfo{Name: r.palette.Name, Keywords: r.keywords})
	}
	return out
}

var handwritingKeywords = []string{"manuscrit", "handwriting", "écrit à la main", "ecriture", "script", "calligraphie"}

// Order matters: blocks are appended in this sequence and later ones win.
var additiveRules = []cssRule{
	{name: "handwriting", keywords: handwritingKeywords, css: handwritingCSS},
	{name: "animation", keywords: []string{"animation", "animé", "dynamique"}, css: animationCSS},
	{name: "elegant", keywords: []string{"élégant", "luxe", "chic", "raffiné", "gastronomique"}, css: elegantCSS},
	{name: "warm", keywords: []string{"chaleureux", "chaleureuse", "familial", "convivial", "accueillant"}, css: warmCSS},
	{name: "golden", keywords: []string{"doré", "or", "gold"}, css: goldenCSS},
	{name: "modern", keywords: []string{"moderne", "contemporain", "futuriste"}, css: modernCSS},
	{name: "minimalist", keywords: []string{"minimaliste", "épuré", "simple"}, css: minimalistCSS},
}

// fontImportRules contribute <link> tags to the document head, in this order.
var fontImportRules = []cssRule{
	{
		name:     "handwriting",
		keywords: handwritingKeywords,
		css:      `<link href="https://fonts.googleapis.com/css2?family=Dancing+Script:wght@400;500;600;700&family=Kalam:wght@300;400;700&family=Caveat:wght@400;500;600;700&family=Amatic+SC:wght@400;700&family=Satisfy&display=swap" rel="stylesheet">`,
	},
	{
		name:     "elegant",
		keywords: []string{"élégant", "luxe"},
		css:      `<link href="https://fonts.googleapis.com/css2?family=Cormorant+Garamond:wght@300;400;500;600;700&family=Cinzel:wght@400;500;600&display=swap" rel="stylesheet">`,
	},
	{
		name:     "modern",
		keywords: []string{"moderne", "futuriste"},
		css:      `<link href="https://fonts.googleapis.com/css2?family=Orbitron:wght@400;500;700;900&family=Exo+2:wght@300;400;500;600;700&display=swap" rel="stylesheet">`,
	},
}

const handwritingCSS = `
/* Handwriting */
.title-section h1 {
  font-family: 'Dancing Script', 'Amatic SC', cursive !important;
  font-weight: 700 !important;
  font-size: clamp(3.5rem, 8vw, 7rem) !important;
  transform: rotate(-3deg) !important;
  text-shadow: 4px 4px 8px rgba(0,0,0,0.4) !important;
  letter-spacing: 3px !important;
  line-height: 1.1 !important;
  margin: 1rem 0 !important;
  position: relative !important;
}

.title-section h1::after {
  content: '' !important;
  position: absolute !important;
  bottom: -10px !important;
  left: 50% !important;
  transform: translateX(-50%) !important;
  width: 80% !important;
  height: 3px !important;
  background: linear-gradient(90deg, transparent, currentColor, transparent) !important;
  opacity: 0.6 !important;
}

.info-title, .gallery-title {
  font-family: 'Caveat', 'Kalam', cursive !important;
  font-weight: 700 !important;
  transform: rotate(-1.5deg) !important;
  font-size: 3rem !important;
  text-shadow: 3px 3px 6px rgba(0,0,0,0.3) !important;
  letter-spacing: 1px !important;
  margin-bottom: 2.5rem !important;
}

.tagline p {
  font-family: 'Satisfy', 'Kalam', cursive !important;
  font-style: italic !important;
  transform: rotate(1deg) !important;
  font-size: 1.6rem !important;
  font-weight: 400 !important;
  line-height: 1.7 !important;
  text-shadow: 2px 2px 4px rgba(0,0,0,0.2) !important;
  letter-spacing: 0.5px !important;
}

.info strong {
  font-family: 'Caveat', cursive !important;
  font-weight: 700 !important;
  font-size: 1.2em !important;
  text-shadow: 1px 1px 2px rgba(0,0,0,0.1) !important;
}

.info p {
  font-family: 'Kalam', cursive !important;
  font-weight: 400 !important;
  line-height: 1.8 !important;
  font-size: 1.1rem !important;
}

@keyframes handwritingFlow {
  0%, 100% { transform: rotate(-3deg) translateY(0px) scale(1); }
  25% { transform: rotate(-2.5deg) translateY(-2px) scale(1.01); }
  50% { transform: rotate(-3.5deg) translateY(-1px) scale(0.99); }
  75% { transform: rotate(-2deg) translateY(-3px) scale(1.02); }
}

.title-section h1 {
  animation: handwritingFlow 6s ease-in-out infinite !important;
}

@keyframes subtitleSway {
  0%, 100% { transform: rotate(-1.5deg) translateX(0px); }
  50% { transform: rotate(-1deg) translateX(2px); }
}

.info-title, .gallery-title {
  animation: subtitleSway 8s ease-in-out infinite !important;
}
`

const animationCSS = `
/* Animations */
@keyframes aiGlow {
  0%, 100% { text-shadow: 0 0 10px currentColor; }
  50% { text-shadow: 0 0 30px currentColor, 0 0 40px currentColor; }
}

@keyframes aiFloat {
  0%, 100% { transform: translateY(0px); }
  50% { transform: translateY(-10px); }
}

@keyframes aiPulse {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(1.05); }
}

@keyframes aiSlideIn {
  from { opacity: 0; transform: translateY(30px); }
  to { opacity: 1; transform: translateY(0); }
}

.title-section h1 {
  animation: aiGlow 3s ease-in-out infinite alternate !important;
}

.gallery img {
  transition: all 0.5s cubic-bezier(0.175, 0.885, 0.32, 1.275) !important;
}

.gallery img:hover {
  transform: translateY(-15px) scale(1.08) rotate(3deg) !important;
  animation: aiFloat 2s ease-in-out infinite !important;
}

.tagline {
  animation: aiFloat 4s ease-in-out infinite !important;
}

.social-link {
  animation: aiPulse 3s ease-in-out infinite !important;
}

.info, .gallery-section {
  animation: aiSlideIn 1s ease-out !important;
}
`

const elegantCSS = `
/* Elegant */
.title-section h1 {
  font-family: 'Cormorant Garamond', 'Cinzel', serif !important;
  font-weight: 300 !important;
  letter-spacing: 6px !important;
  text-transform: uppercase !important;
  font-size: clamp(2rem, 4vw, 3.5rem) !important;
}

.tagline {
  font-style: italic !important;
  font-weight: 300 !important;
  border: 1px solid rgba(0,0,0,0.1) !important;
  background: rgba(255,255,255,0.95) !important;
  backdrop-filter: blur(20px) !important;
}

.gallery img {
  border-radius: 0 !important;
  filter: grayscale(30%) contrast(1.1) !important;
  border: 1px solid rgba(0,0,0,0.1) !important;
}

.gallery img:hover {
  filter: grayscale(0%) contrast(1.2) !important;
  transform: scale(1.02) !important;
}

.info {
  border: 1px solid rgba(0,0,0,0.1) !important;
  background: rgba(255,255,255,0.95) !important;
  backdrop-filter: blur(20px) !important;
}
`

const warmCSS = `
/* Warm */
.gallery img {
  border-radius: 20px !important;
  border: 4px solid #fff !important;
  box-shadow: 0 15px 35px rgba(0,0,0,0.2) !important;
}

.gallery img:hover {
  transform: translateY(-8px) scale(1.05) !important;
}

.tagline, .info {
  background: rgba(255, 255, 255, 0.9) !important;
  border: 2px solid rgba(255,255,255,0.5) !important;
  box-shadow: 0 10px 30px rgba(0,0,0,0.1) !important;
}
`

const goldenCSS = `
/* Golden */
.social-link:hover {
  box-shadow: 0 0 25px #ffd700 !important;
  border-color: #ffd700 !important;
  transform: translateY(-5px) scale(1.1) !important;
}

.gallery img:hover {
  border-color: #ffd700 !important;
  box-shadow: 0 0 40px rgba(255, 215, 0, 0.6) !important;
}

.title-section h1 {
  text-shadow: 0 0 20px #ffd700, 0 2px 4px rgba(255, 215, 0, 0.5) !important;
}

.info-title, .gallery-title {
  text-shadow: 0 0 15px #ffd700 !important;
}
`

const modernCSS = `
/* Modern */
.title-section h1 {
  font-family: 'Orbitron', 'Exo 2', sans-serif !important;
  font-weight: 900 !important;
  background: linear-gradient(45deg, var(--ai-primary, #3b82f6), var(--ai-accent, #60a5fa)) !important;
  -webkit-background-clip: text !important;
  -webkit-text-fill-color: transparent !important;
  background-clip: text !important;
  text-shadow: none !important;
}

.gallery img {
  border-radius: 25px !important;
  box-shadow: 0 25px 50px rgba(0,0,0,0.15) !important;
  border: none !important;
}

.gallery img:hover {
  box-shadow: 0 35px 70px rgba(0,0,0,0.25) !important;
}

.info, .tagline {
  border-radius: 25px !important;
  backdrop-filter: blur(20px) !important;
  border: 1px solid rgba(255,255,255,0.2) !important;
}
`

const minimalistCSS = `
/* Minimalist */
.title-section {
  background: #ffffff !important;
  padding: 4rem 2rem !important;
}

.title-section h1 {
  font-weight: 300 !important;
  color: var(--ai-primary, #1f2937) !important;
  text-shadow: none !important;
}

.gallery img {
  border-radius: 0 !important;
  border: none !important;
  box-shadow: none !important;
}

.gallery img:hover {
  transform: none !important;
  opacity: 0.8 !important;
}

.tagline, .info {
  background: #ffffff !important;
  border: 1px solid #e5e7eb !important;
  border-radius: 0 !important;
  box-shadow: none !important;
}

.gallery-section::before, .gallery-section::after {
  display: none !important;
}
`
