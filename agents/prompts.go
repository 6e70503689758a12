package agents

import "github.com/deepnoodle-ai/brief/language"

// pick selects the template for a run's language. English is the
// fallback for anything unrecognized.
func pick(lang, es, en string) string {
	if lang == language.Spanish {
		return es
	}
	return en
}

const promptAnalyzerES = `Analiza este prompt de marketing y extrae información estructurada:

PROMPT: "%s"

Extrae y estructura la siguiente información:

1. OBJETIVO: ¿Qué quiere lograr? (ventas, awareness, engagement, etc.)
2. AUDIENCIA: ¿A quién se dirige? (demografía, psicografía)
3. SEÑALES DE MARCA: ¿Qué indica sobre la marca? (tono, personalidad, valores)
4. HECHOS CLAVE: Datos específicos mencionados (nombres, fechas, números)
5. URGENCIA: ¿Hay elementos de urgencia temporal?
6. PLATAFORMA: ¿Se menciona alguna plataforma específica?
7. TONO: Indicadores del tono de comunicación
8. OBJETIVOS: Objetivos específicos del contenido

Responde SOLO en formato JSON válido con esta estructura:
{
    "objective": "string",
    "audience": "string",
    "brand_cues": ["string"],
    "key_facts": ["string"],
    "urgency": "string o null",
    "platform": "string o null",
    "tone_indicators": ["string"],
    "content_goals": ["string"]
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const promptAnalyzerEN = `Analyze this marketing prompt and extract structured information:

PROMPT: "%s"

Extract and structure the following information:

1. OBJECTIVE: What does it want to achieve? (sales, awareness, engagement, etc.)
2. AUDIENCE: Who is it targeting? (demographics, psychographics)
3. BRAND CUES: What does it indicate about the brand? (tone, personality, values)
4. KEY FACTS: Specific data mentioned (names, dates, numbers)
5. URGENCY: Are there temporal urgency elements?
6. PLATFORM: Is any specific platform mentioned?
7. TONE: Communication tone indicators
8. GOALS: Specific content objectives

Respond ONLY in valid JSON format with this structure:
{
    "objective": "string",
    "audience": "string",
    "brand_cues": ["string"],
    "key_facts": ["string"],
    "urgency": "string or null",
    "platform": "string or null",
    "tone_indicators": ["string"],
    "content_goals": ["string"]
}

IMPORTANT: Only respond with the JSON, no additional text.`

const postClassifierES = `Basándote en este análisis, clasifica el tipo de post más efectivo:

ANÁLISIS DEL PROMPT:
%s

TIPOS DISPONIBLES:
- Launch: Lanzamiento de producto/servicio
- Educational: Educar sobre beneficios/procesos
- Promotional: Ofertas, descuentos, promociones
- Storytelling: Narrativa de marca, testimonios
- Engagement: Preguntas, polls, contenido interactivo

Responde SOLO con el tipo más apropiado y una breve justificación en formato JSON:
{
    "post_type": "Launch|Educational|Promotional|Storytelling|Engagement",
    "justification": "Breve explicación de por qué este tipo es el más apropiado"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const postClassifierEN = `Based on this analysis, classify the most effective post type:

PROMPT ANALYSIS:
%s

AVAILABLE TYPES:
- Launch: Product/service launch
- Educational: Educate about benefits/processes
- Promotional: Offers, discounts, promotions
- Storytelling: Brand narrative, testimonials
- Engagement: Questions, polls, interactive content

Respond ONLY with the most appropriate type and brief justification in JSON format:
{
    "post_type": "Launch|Educational|Promotional|Storytelling|Engagement",
    "justification": "Brief explanation of why this type is most appropriate"
}

IMPORTANT: Only respond with the JSON, no additional text.`

const brandVoiceES = `Basándote en el análisis del prompt, define la voz de marca:

ANÁLISIS: %s
TIPO DE POST: %s

Define la voz de marca considerando:
1. TONO: Tono general de comunicación
2. PERSONALIDAD: Características humanas de la marca
3. ESTILO: Forma de expresarse
4. VALORES: Principios fundamentales
5. NIVEL DE LENGUAJE: Formal, casual, técnico

Responde en formato JSON:
{
    "tone": "string",
    "personality": "string",
    "style": "string",
    "values": ["string"],
    "language_level": "string"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const brandVoiceEN = `Based on the prompt analysis, define the brand voice:

ANALYSIS: %s
POST TYPE: %s

Define the brand voice considering:
1. TONE: General communication tone
2. PERSONALITY: Human characteristics of the brand
3. STYLE: Way of expressing
4. VALUES: Fundamental principles
5. LANGUAGE LEVEL: Formal, casual, technical

Respond in JSON format:
{
    "tone": "string",
    "personality": "string",
    "style": "string",
    "values": ["string"],
    "language_level": "string"
}

IMPORTANT: Only respond with the JSON, no additional text.`

const factGroundingES = `Valida y estructura los hechos clave del prompt de marketing:

PROMPT: %s
HECHOS IDENTIFICADOS: %s

Para cada hecho, proporciona:
1. VERIFICACIÓN: Estado de verificación
2. FUENTES: Posibles fuentes de datos
3. CONTEXTO: Información adicional necesaria

Responde en formato JSON:
{
    "key_facts": ["string"],
    "data_sources": ["string"],
    "verification_status": "string"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const factGroundingEN = `Validate and structure key facts from the marketing prompt:

PROMPT: %s
IDENTIFIED FACTS: %s

For each fact, provide:
1. VERIFICATION: Verification status
2. SOURCES: Possible data sources
3. CONTEXT: Additional necessary information

Respond in JSON format:
{
    "key_facts": ["string"],
    "data_sources": ["string"],
    "verification_status": "string"
}

IMPORTANT: Only respond with the JSON, no additional text.`

const textGeneratorES = `Genera el contenido principal de un post de marketing:

ANÁLISIS: %s
TIPO: %s
VOZ DE MARCA: %s
HECHOS: %s

REQUISITOS:
- Contenido coherente y atractivo
- Alineado con la voz de marca
- Basado en hechos verificados
- Optimizado para engagement
- Longitud apropiada para redes sociales

Genera el contenido principal del post. Responde SOLO con el texto del post, sin formato adicional.`

const textGeneratorEN = `Generate the main content for a marketing post:

ANALYSIS: %s
TYPE: %s
BRAND VOICE: %s
FACTS: %s

REQUIREMENTS:
- Coherent and engaging content
- Aligned with brand voice
- Based on verified facts
- Optimized for engagement
- Appropriate length for social media

Generate the main post content. Respond ONLY with the post text, no additional formatting.`

const captionCreatorES = `Crea elementos de engagement para el post:

CONTENIDO PRINCIPAL: %s
TIPO DE POST: %s
VOZ DE MARCA: %s
OBJETIVO: %s

Crea:
1. CAPTION: Texto atractivo que acompañe el contenido
2. CTA: Llamada a la acción clara
3. HASHTAGS: Hashtags relevantes y populares
4. GANCHOS: Elementos para generar engagement
5. PREGUNTAS: Preguntas para interacción

Responde en formato JSON:
{
    "caption": "string",
    "call_to_action": "string",
    "hashtags": ["string"],
    "engagement_hooks": ["string"],
    "questions": ["string"]
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const captionCreatorEN = `Create engagement elements for the post:

MAIN CONTENT: %s
POST TYPE: %s
BRAND VOICE: %s
OBJECTIVE: %s

Create:
1. CAPTION: Engaging text to accompany the content
2. CTA: Clear call to action
3. HASHTAGS: Relevant and popular hashtags
4. HOOKS: Elements to generate engagement
5. QUESTIONS: Questions for interaction

Respond in JSON format:
{
    "caption": "string",
    "call_to_action": "string",
    "hashtags": ["string"],
    "engagement_hooks": ["string"],
    "questions": ["string"]
}

IMPORTANT: Only respond with the JSON, no additional text.`

const visualConceptES = `Genera un concepto visual detallado para el diseñador:

CONTENIDO: %s
TIPO: %s
VOZ DE MARCA: %s
OBJETIVO: %s

Define:
1. MOOD: Estado de ánimo visual
2. PALETA: Colores apropiados
3. IMAGEN: Tipo de imágenes a usar
4. LAYOUT: Estilo de composición
5. ELEMENTOS: Componentes visuales específicos
6. NOTAS: Instrucciones para el diseñador

Responde en formato JSON:
{
    "mood": "string",
    "color_palette": ["string"],
    "imagery_type": "string",
    "layout_style": "string",
    "visual_elements": ["string"],
    "design_notes": "string"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const visualConceptEN = `Generate a detailed visual concept for the designer:

CONTENT: %s
TYPE: %s
BRAND VOICE: %s
OBJECTIVE: %s

Define:
1. MOOD: Visual mood
2. PALETTE: Appropriate colors
3. IMAGERY: Type of images to use
4. LAYOUT: Composition style
5. ELEMENTS: Specific visual components
6. NOTES: Instructions for the designer

Respond in JSON format:
{
    "mood": "string",
    "color_palette": ["string"],
    "imagery_type": "string",
    "layout_style": "string",
    "visual_elements": ["string"],
    "design_notes": "string"
}

IMPORTANT: Only respond with the JSON, no additional text.`

const reasoningModuleES = `Explica las decisiones estratégicas tomadas para este post:

ANÁLISIS COMPLETO: %s

Proporciona:
1. DECISIONES: Decisiones estratégicas clave
2. AUDIENCIA: Consideraciones sobre la audiencia
3. PLATAFORMA: Optimización para la plataforma
4. COMPETITIVO: Análisis competitivo (si aplica)
5. RIESGOS: Evaluación de riesgos y mitigaciones

Responde en formato JSON:
{
    "strategic_decisions": ["string"],
    "audience_considerations": "string",
    "platform_optimization": "string",
    "competitive_analysis": "string",
    "risk_assessment": "string"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const reasoningModuleEN = `Explain the strategic decisions made for this post:

COMPLETE ANALYSIS: %s

Provide:
1. DECISIONS: Key strategic decisions
2. AUDIENCE: Audience considerations
3. PLATFORM: Platform optimization
4. COMPETITIVE: Competitive analysis (if applicable)
5. RISKS: Risk assessment and mitigations

Respond in JSON format:
{
    "strategic_decisions": ["string"],
    "audience_considerations": "string",
    "platform_optimization": "string",
    "competitive_analysis": "string",
    "risk_assessment": "string"
}

IMPORTANT: Only respond with the JSON, no additional text.`

const visualFormatRecommenderES = `Recomienda el formato visual más efectivo para este contenido:

ANÁLISIS: %s
TIPO DE POST: %s
PLATAFORMA: %s

Evalúa y recomienda entre:
1. VIDEO: Video corto/reel (mayor engagement)
2. CAROUSEL: Carrusel de imágenes
3. IMAGE: Imagen estática
4. INFOGRAPHIC: Infografía

Considera:
- El contenido en video suele obtener 2-3x más engagement
- Preferencias de plataforma (TikTok/Reels favorecen el video)
- Complejidad de producción vs potencial de engagement
- Comportamiento de la audiencia objetivo

Responde en formato JSON:
{
    "recommended_format": "Image|Video|Carousel|Infographic",
    "justification": "Razonamiento detallado",
    "platform_optimization": "Consejos específicos de plataforma"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const visualFormatRecommenderEN = `Recommend the most effective visual format for this content:

ANALYSIS: %s
POST TYPE: %s
PLATFORM: %s

Evaluate and recommend between:
1. VIDEO: Short video/reel (highest engagement)
2. CAROUSEL: Image carousel
3. IMAGE: Static image
4. INFOGRAPHIC: Infographic

Consider:
- Video content typically gets 2-3x higher engagement
- Platform preferences (TikTok/Reels favor video)
- Production complexity vs engagement potential
- Target audience behavior

For video campaigns or Gen Z audiences, strongly favor VIDEO format.

Respond in JSON format:
{
    "recommended_format": "Image|Video|Carousel|Infographic",
    "justification": "Detailed reasoning",
    "platform_optimization": "Platform-specific tips"
}

IMPORTANT: Only respond with the JSON, no additional text.`

const videoScripterES = `Crea un script estructurado para video de formato corto:

CONTENIDO PRINCIPAL: %s
FORMATO RECOMENDADO: %s
PLATAFORMA: %s
DURACIÓN OBJETIVO: %s

Crea un script con:
1. HOOK (0-3s): Captar atención inmediata
2. SETUP (3-8s): Establecer contexto
3. CONTENT (8-25s): Mensaje principal
4. CTA (25-30s): Llamada a la acción

Incluye texto/narración por segmento, indicaciones visuales y elementos de engagement.

Responde en formato JSON:
{
    "script_segments": [
        {
            "segment": "hook/setup/content/cta",
            "duration": "0-3s",
            "narration": "string",
            "visual_direction": "string",
            "text_overlay": "string"
        }
    ],
    "engagement_elements": ["string"],
    "music_style": "string",
    "hashtags": ["string"]
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const videoScripterEN = `Create a structured script for short-form video:

MAIN CONTENT: %s
RECOMMENDED FORMAT: %s
PLATFORM: %s
TARGET DURATION: %s

Create a script with:
1. HOOK (0-3s): Capture immediate attention
2. SETUP (3-8s): Establish context
3. CONTENT (8-25s): Main message
4. CTA (25-30s): Call to action

Include text/narration per segment, visual directions and engagement elements.

Respond in JSON format:
{
    "script_segments": [
        {
            "segment": "hook/setup/content/cta",
            "duration": "0-3s",
            "narration": "string",
            "visual_direction": "string",
            "text_overlay": "string"
        }
    ],
    "engagement_elements": ["string"],
    "music_style": "string",
    "hashtags": ["string"]
}

IMPORTANT: Only respond with the JSON, no additional text.`

const resultOptimizerES = `Optimiza la estrategia basándote en datos de performance:

DATOS DE PERFORMANCE: %s
ESTRATEGIA ACTUAL: %s

Analiza y optimiza:
1. Contenido para mayor engagement
2. Timing óptimo de publicación
3. Ajustes de formato visual
4. Tácticas de engagement específicas

Responde en formato JSON:
{
    "recommendations": ["string"],
    "trending_hashtags": ["string"],
    "seasonal_context": "string",
    "expected_ctr": 0.04,
    "expected_engagement_rate": 0.05,
    "estimated_reach": 2000,
    "confidence_score": 0.8
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const resultOptimizerEN = `Act as a digital marketing strategist optimizing campaigns by integrating historical performance data and current contextual data.

HISTORICAL PERFORMANCE DATA: %s
CURRENT STRATEGY: %s

Analyze and optimize:
1. Content adjustments for higher engagement
2. Optimal posting timing
3. Visual format adjustments
4. Specific engagement tactics

Respond in JSON format:
{
    "recommendations": ["string"],
    "trending_hashtags": ["string"],
    "seasonal_context": "string",
    "expected_ctr": 0.04,
    "expected_engagement_rate": 0.05,
    "estimated_reach": 2000,
    "confidence_score": 0.8
}

IMPORTANT: Use realistic estimates if exact metrics aren't available. Only respond with the JSON, no additional text.`

const contextualAwarenessES = `Incorpora contexto externo y tendencias actuales:

ESTRATEGIA BASE: %s
DATOS EXTERNOS: %s

Ajusta la estrategia considerando:
1. Tendencias actuales relevantes
2. Eventos del momento
3. Contexto competitivo
4. Oportunidades emergentes
5. Factores estacionales

Responde en formato JSON:
{
    "relevant_trends": ["string"],
    "trending_hashtags": ["string"],
    "optimal_posting_time": "string",
    "adaptations": ["string"],
    "industry_context": "string"
}

IMPORTANTE: Solo responde con el JSON, sin texto adicional.`

const contextualAwarenessEN = `Act as a real-time marketing intelligence engine that integrates current contextual data to optimize campaign performance.

BASE STRATEGY: %s
EXTERNAL DATA: %s

Analyze current context and provide actionable insights:
1. Relevant current trends
2. Trending hashtags with engagement potential
3. Optimal posting times
4. Content adaptations for current trends
5. Industry context

Respond in JSON format:
{
    "relevant_trends": ["string"],
    "trending_hashtags": ["string"],
    "optimal_posting_time": "string",
    "adaptations": ["string"],
    "industry_context": "string"
}

IMPORTANT: Focus on actionable, time-sensitive insights. Only respond with the JSON, no additional text.`
