package service

// Configuracion estatica del analisis: categorias, prompts y multiplicadores.
// Es un valor inmutable a nivel de proceso; cambiarlo es un cambio de deploy.

// AnalysisCategory es una categoria del taxonomy fijo enviado al LLM.
type AnalysisCategory struct {
	Name        string
	Description string
}

// AnalysisConfig agrupa taxonomy, prompts y parametros del modelo.
type AnalysisConfig struct {
	Categories []AnalysisCategory
	Prompt     struct {
		System string
		User   string
	}
	Multipliers struct {
		Review         float64
		Vouch          float64
		ScoreThreshold struct {
			Minimal float64
			High    float64
		}
	}
	OpenRouter struct {
		Model       string
		MaxTokens   int
		Temperature float64
	}
}

// DefaultAnalysisConfig devuelve la configuracion usada en produccion.
func DefaultAnalysisConfig() AnalysisConfig {
	var cfg AnalysisConfig

	cfg.Categories = []AnalysisCategory{
		{Name: "Degen", Description: "High-risk, high-reward mentality - early adopter of new protocols and trends"},
		{Name: "Collab manager", Description: "ONLY score if explicitly mentioned as 'collab manager', 'CM', or similar collaboration management role terms. Requires specific mention of these exact terms."},
		{Name: "Builder", Description: "Actively creates and ships products, tools, or services that provide value"},
		{Name: "Influencer", Description: "Influences others through insights, analysis, and forward-thinking perspectives"},
		{Name: "Founders", Description: "Entrepreneurial leaders who start and build companies, projects, or initiatives from the ground up"},
		{Name: "Angel investors", Description: "Early-stage investors who provide capital, mentorship, and strategic guidance to startups and emerging projects"},
		{Name: "Content creator", Description: "Creates various types of content including videos, articles, research, thought leadership, or educational materials"},
		{Name: "Artists", Description: "Creative individuals who produce original visual, audio, or digital art and contribute to the cultural ecosystem"},
		{Name: "Marketers", Description: "ONLY score if explicitly mentioned as 'marketer', 'marketing', or similar marketing role terms. Requires specific mention of these exact terms."},
		{Name: "Alpha Callers", Description: "ONLY score if explicitly mentioned as 'alpha caller', 'alpha', 'calls alpha', or similar alpha-calling terms. Requires specific mention of these exact terms."},
		{Name: "Developers", Description: "ONLY score if explicitly mentioned as 'developer', 'dev', 'coder', 'programmer', or similar development role terms. Requires specific mention of these exact terms."},
		{Name: "Farmers", Description: "Savvy opportunists who strategically participate in protocols and campaigns to maximize airdrops and rewards"},
		{Name: "Shitposters", Description: "High-engagement social media users who frequently post, reply, and engage with content across platforms like Twitter"},
		{Name: "KOL Managers", Description: "Behind-the-scenes operators who manage influencers, coordinate partnerships, and handle business development for key opinion leaders"},
		{Name: "Art collectors", Description: "Enthusiasts who collect, curate, and trade digital or physical art, often with deep knowledge of artistic trends and creators"},
		{Name: "Scammers", Description: "Individuals who engage in fraudulent activities, deceptive practices, or malicious behavior within the ecosystem"},
	}

	cfg.Prompt.System = `You are an expert analyst tasked with evaluating a person's characteristics based on peer reviews and vouches from the Ethos network.

Your goal is to analyze the provided reviews and vouches to determine how well the person matches specific personality and professional categories.

CRITICAL SCORING PRINCIPLES:
1. BE CONSERVATIVE: Only assign scores when there is clear evidence in the reviews/vouches
2. USE 0.0: If there is NO evidence or mention of a category, return 0.0 (not 0.1 or any other low score)
3. BE PRECISE: Use precise decimals (e.g., 0.73, 0.42) rather than round increments (0.1, 0.2, etc.)
4. EVIDENCE-BASED: Base scores only on what is explicitly mentioned or strongly implied in the content

WEIGHTING FACTORS:
- Reviewer credibility score (higher = more reliable)
- Vouches carry more weight than reviews (financial stake involved)
- Multiple consistent mentions increase confidence
- Quality and detail of the review content

Return your analysis as a JSON object with category names as keys and confidence scores (0.0 to 1.0) as values.`

	cfg.Prompt.User = `Analyze the following reviews and vouches for a user and rate their alignment with these categories:

CATEGORIES:
{categories}

SCORING METHODOLOGY:
- 0.0: No evidence whatsoever (use this liberally for unmentioned categories)
- 0.01-0.15: Minimal/weak evidence or passing mention
- 0.16-0.35: Some evidence but not prominent
- 0.36-0.60: Clear evidence with multiple mentions or good detail
- 0.61-0.85: Strong evidence with consistent patterns across reviews
- 0.86-1.0: Overwhelming evidence, primary defining characteristic

REVIEWER WEIGHT:
- Scores 1200-1500: Minimal credibility weight (0.5x)
- Scores 1500-2000: Moderate credibility weight (1.0x)
- Scores 2000+: High credibility weight (1.5x)
- Vouches: Additional {vouchMultiplier}x multiplier on top of credibility weight
- Reviews: Base {reviewMultiplier}x multiplier

ACTIVITIES TO ANALYZE:
{activities}

Return ONLY a JSON object with precise confidence scores (0.0 to 1.0) for each category. Use precise decimals, not round increments. Be conservative - when in doubt, score lower or use 0.0.`

	cfg.Multipliers.Review = 1.0
	cfg.Multipliers.Vouch = 2.0
	cfg.Multipliers.ScoreThreshold.Minimal = 1200
	cfg.Multipliers.ScoreThreshold.High = 2000

	cfg.OpenRouter.Model = "anthropic/claude-3.5-sonnet"
	cfg.OpenRouter.MaxTokens = 1000
	cfg.OpenRouter.Temperature = 0.3

	return cfg
}

// CategoryNames devuelve los nombres en el orden configurado; ese orden es
// el canonico para desempates en el renderer.
func (c AnalysisConfig) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}
