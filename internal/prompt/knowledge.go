package prompt

// Knowledge captures image-generation guidance for one category of
// technique: composition rules, lighting setups, artistic styles, and so on.
// The quality modifiers double as the keyword set the enhancer scans for.
type Knowledge struct {
	Category         string
	Subcategory      string
	Techniques       []string
	QualityModifiers []string
	Examples         []string
}

// GenerationKnowledge is the static knowledge base backing the enhancer.
var GenerationKnowledge = []Knowledge{
	{
		Category:    "Composition",
		Subcategory: "Rule of Thirds",
		Techniques: []string{
			"Place main subject at intersection points of grid lines",
			"Divide frame into 9 equal parts using 2 horizontal and 2 vertical lines",
			"Position horizon on top or bottom third line",
			"Create visual tension by offsetting subject from center",
		},
		QualityModifiers: []string{"well-composed", "balanced composition", "professionally framed"},
		Examples: []string{
			"landscape with horizon on lower third, tree on right intersection",
			"portrait with eyes on upper horizontal line",
			"street scene with vanishing point at intersection",
		},
	},
	{
		Category:    "Lighting",
		Subcategory: "Natural Light",
		Techniques: []string{
			"Golden hour: warm, soft light during sunrise/sunset",
			"Blue hour: cool, diffused light before sunrise/after sunset",
			"Backlighting: light source behind subject creates silhouettes or rim lighting",
			"Side lighting: emphasizes texture and depth",
			"Diffused lighting: soft shadows from overcast conditions",
		},
		QualityModifiers: []string{"natural lighting", "golden hour", "dramatic lighting", "soft shadows"},
		Examples: []string{
			"portrait during golden hour with warm rim lighting",
			"landscape at blue hour with cool atmospheric perspective",
			"backlit subject with glowing edges and soft shadows",
		},
	},
	{
		Category:    "Lighting",
		Subcategory: "Studio Lighting",
		Techniques: []string{
			"Three-point lighting: key light, fill light, and back light",
			"Rembrandt lighting: triangle of light on shadowed cheek",
			"Butterfly lighting: light directly above and in front of subject",
			"Split lighting: half of face in light, half in shadow",
			"High-key: bright, minimal shadows, cheerful mood",
			"Low-key: dark, dramatic shadows, moody atmosphere",
		},
		QualityModifiers: []string{"studio lighting", "professionally lit", "dramatic shadows", "high-key", "low-key"},
		Examples: []string{
			"portrait with Rembrandt lighting and triangle highlight",
			"product photography with three-point lighting setup",
			"high-key fashion shoot with minimal shadows",
		},
	},
	{
		Category:    "Color Theory",
		Subcategory: "Color Harmony",
		Techniques: []string{
			"Complementary: colors opposite on color wheel (red-green, blue-orange)",
			"Analogous: adjacent colors on wheel create harmony",
			"Triadic: three colors equally spaced on wheel",
			"Monochromatic: variations of single hue",
			"Split-complementary: base color plus two adjacent to its complement",
		},
		QualityModifiers: []string{"vibrant colors", "color grading", "cinematic colors", "harmonious palette"},
		Examples: []string{
			"sunset scene with complementary orange and blue tones",
			"forest scene with analogous greens and yellows",
			"minimalist portrait with monochromatic blue palette",
		},
	},
	{
		Category:    "Perspective",
		Subcategory: "Depth and Dimension",
		Techniques: []string{
			"Linear perspective: parallel lines converge at vanishing point",
			"Atmospheric perspective: distant objects appear hazier and bluer",
			"Forced perspective: manipulate apparent size through positioning",
			"Worm's eye view: camera positioned low looking up",
			"Bird's eye view: camera positioned high looking down",
			"Dutch angle: tilted horizon for dynamic tension",
		},
		QualityModifiers: []string{"deep depth of field", "bokeh background", "tilt-shift", "wide angle"},
		Examples: []string{
			"city street with strong linear perspective toward vanishing point",
			"mountain landscape with atmospheric haze on distant peaks",
			"architectural shot from worm's eye view emphasizing height",
		},
	},
	{
		Category:    "Artistic Styles",
		Subcategory: "Realism",
		Techniques: []string{
			"Photorealistic rendering with accurate lighting and textures",
			"Hyperrealism with enhanced detail beyond photography",
			"Precise shadows and reflections",
			"Accurate color reproduction",
			"Natural proportions and anatomy",
		},
		QualityModifiers: []string{"photorealistic", "8k resolution", "ultra detailed", "hyperrealistic", "lifelike"},
		Examples: []string{
			"photorealistic portrait with skin pores and hair detail visible",
			"hyperrealistic still life with water droplets and reflections",
			"architectural visualization with accurate materials and lighting",
		},
	},
	{
		Category:    "Artistic Styles",
		Subcategory: "Impressionism",
		Techniques: []string{
			"Visible brushstrokes and texture",
			"Emphasis on light and its changing qualities",
			"Ordinary subject matter",
			"Unusual visual angles",
			"Separate rather than blended colors",
		},
		QualityModifiers: []string{"impressionist style", "painterly", "loose brushwork", "vibrant"},
		Examples: []string{
			"garden scene with dappled sunlight and loose brushstrokes",
			"water lilies with reflections in impressionist style",
			"street cafe with bright, separate color dabs",
		},
	},
	{
		Category:    "Artistic Styles",
		Subcategory: "Surrealism",
		Techniques: []string{
			"Dreamlike scenarios and impossible situations",
			"Juxtaposition of unrelated objects",
			"Distorted scale and proportions",
			"Symbolic imagery",
			"Photorealistic rendering of impossible scenes",
		},
		QualityModifiers: []string{"surreal", "dreamlike", "fantastical", "otherworldly"},
		Examples: []string{
			"melting clocks in desert landscape",
			"fish swimming through clouds",
			"staircase leading to nowhere in impossible architecture",
		},
	},
	{
		Category:    "Technical Quality",
		Subcategory: "Resolution and Detail",
		Techniques: []string{
			"High pixel density for sharp details",
			"Proper anti-aliasing to prevent jagged edges",
			"Texture detail at multiple scales",
			"Clean, noise-free rendering",
			"Proper focus and depth of field",
		},
		QualityModifiers: []string{
			"8k resolution", "4k", "ultra HD", "sharp focus", "highly detailed",
			"intricate details", "masterpiece quality", "professional grade",
		},
		Examples: []string{
			"macro photography with visible texture details",
			"landscape with crisp details from foreground to background",
			"product shot with clean, sharp edges",
		},
	},
	{
		Category:    "Mood and Atmosphere",
		Subcategory: "Emotional Tone",
		Techniques: []string{
			"Warm colors for comfort, energy, passion",
			"Cool colors for calm, sadness, professionalism",
			"High contrast for drama and tension",
			"Low contrast for subtlety and calm",
			"Fog/mist for mystery and atmosphere",
			"Rain for melancholy or romance",
		},
		QualityModifiers: []string{
			"moody", "atmospheric", "ethereal", "dramatic", "peaceful",
			"energetic", "melancholic", "romantic", "mysterious",
		},
		Examples: []string{
			"foggy forest with mysterious atmosphere",
			"rainy city street with reflective surfaces and neon lights",
			"warm sunset creating peaceful, contemplative mood",
		},
	},
	{
		Category:    "Subject Matter",
		Subcategory: "Portraiture",
		Techniques: []string{
			"Eye-level camera position for natural feel",
			"Slightly above for slimming effect",
			"Slightly below for powerful, dominant feel",
			"Focus on eyes as primary focal point",
			"Use of leading lines to draw attention to face",
			"Natural expressions and poses",
		},
		QualityModifiers: []string{
			"portrait photography", "headshot", "environmental portrait",
			"candid", "studio portrait", "fashion photography",
		},
		Examples: []string{
			"close-up portrait with sharp focus on eyes",
			"environmental portrait showing subject in their workspace",
			"dramatic low-key portrait with side lighting",
		},
	},
	{
		Category:    "Subject Matter",
		Subcategory: "Landscape",
		Techniques: []string{
			"Include foreground interest for depth",
			"Use leading lines to guide viewer's eye",
			"Wait for optimal lighting conditions",
			"Include sky for context and mood",
			"Use long exposure for smooth water/clouds",
			"Frame with natural elements",
		},
		QualityModifiers: []string{
			"landscape photography", "wide angle", "panoramic", "scenic vista",
			"nature photography", "wilderness",
		},
		Examples: []string{
			"mountain landscape with lake reflection and dramatic clouds",
			"coastal scene with rocks in foreground and long exposure waves",
			"forest path leading into misty distance",
		},
	},
	{
		Category:    "Post-Processing",
		Subcategory: "Enhancement Techniques",
		Techniques: []string{
			"Color grading for mood and style",
			"Selective sharpening of focal points",
			"Dodge and burn for depth",
			"Vignetting to draw focus inward",
			"Clarity adjustment for texture enhancement",
			"Split toning for creative color effects",
		},
		QualityModifiers: []string{
			"color graded", "cinematic look", "film grain", "vintage",
			"HDR", "enhanced", "professionally edited",
		},
		Examples: []string{
			"portrait with warm tones and gentle vignette",
			"landscape with enhanced clarity in foreground details",
			"street photography with cinematic color grading",
		},
	},
}
