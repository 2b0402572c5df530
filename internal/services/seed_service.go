package services

import (
	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

var seedCategories = []models.Category{
	{
		Name:        "Marketing & Sales",
		Slug:        "marketing-sales",
		Description: "Prompts for marketing campaigns, sales copy, and customer engagement",
		Icon:        "📈",
		Color:       "#10B981",
	},
	{
		Name:        "Content Creation",
		Slug:        "content-creation",
		Description: "Prompts for blogs, articles, social media, and creative writing",
		Icon:        "✍️",
		Color:       "#8B5CF6",
	},
	{
		Name:        "Programming & Code",
		Slug:        "programming-code",
		Description: "Prompts for code generation, debugging, and technical documentation",
		Icon:        "💻",
		Color:       "#3B82F6",
	},
	{
		Name:        "Business & Strategy",
		Slug:        "business-strategy",
		Description: "Prompts for business planning, strategy, and professional communication",
		Icon:        "💼",
		Color:       "#F59E0B",
	},
	{
		Name:        "Education & Learning",
		Slug:        "education-learning",
		Description: "Prompts for teaching, learning, and educational content",
		Icon:        "🎓",
		Color:       "#EF4444",
	},
	{
		Name:        "Personal Development",
		Slug:        "personal-development",
		Description: "Prompts for self-improvement, productivity, and personal growth",
		Icon:        "🌱",
		Color:       "#06B6D4",
	},
	{
		Name:        "Creative & Design",
		Slug:        "creative-design",
		Description: "Prompts for creative projects, design thinking, and artistic endeavors",
		Icon:        "🎨",
		Color:       "#EC4899",
	},
	{
		Name:        "Research & Analysis",
		Slug:        "research-analysis",
		Description: "Prompts for research, data analysis, and information gathering",
		Icon:        "🔍",
		Color:       "#84CC16",
	},
}

// SeedDemoData upserts the demo catalog: the standard categories and a
// handful of sample prompts authored by the given admin. Safe to run
// on every startup.
func SeedDemoData(db *gorm.DB, adminID uint) error {
	for _, category := range seedCategories {
		err := db.Where("slug = ?", category.Slug).
			Assign(category).
			FirstOrCreate(&models.Category{}).Error
		if err != nil {
			return err
		}
	}

	var marketing, content, programming models.Category
	if err := db.Where("slug = ?", "marketing-sales").First(&marketing).Error; err != nil {
		return err
	}
	if err := db.Where("slug = ?", "content-creation").First(&content).Error; err != nil {
		return err
	}
	if err := db.Where("slug = ?", "programming-code").First(&programming).Error; err != nil {
		return err
	}

	samplePrompts := []models.Prompt{
		{
			Title:       "High-Converting Product Launch Email",
			Slug:        "high-converting-product-launch-email",
			Description: "Write a persuasive launch email that turns subscribers into buyers",
			Content:     "Act as an experienced email marketer. Write a product launch email for [PRODUCT] aimed at [AUDIENCE]. Open with a hook, build urgency around the launch window, list three concrete benefits, and close with a single clear call to action.",
			CategoryID:  marketing.ID,
			AuthorID:    adminID,
			Tags:        models.StringList{"email", "copywriting", "launch"},
			Difficulty:  models.DifficultyIntermediate,
			Type:        models.TypeBusiness,
			IsPublished: true,
		},
		{
			Title:       "SEO Blog Post Outline",
			Slug:        "seo-blog-post-outline",
			Description: "Generate an SEO-optimized outline for any target keyword",
			Content:     "Act as an SEO content strategist. Create a detailed blog post outline targeting the keyword [KEYWORD]. Include an H1, five to seven H2 sections with suggested H3s, a meta description under 160 characters, and a list of related keywords to weave in.",
			CategoryID:  content.ID,
			AuthorID:    adminID,
			Tags:        models.StringList{"seo", "blogging", "outline"},
			Difficulty:  models.DifficultyBeginner,
			Type:        models.TypeText,
			IsPublished: true,
		},
		{
			Title:       "Thorough Code Review Assistant",
			Slug:        "thorough-code-review-assistant",
			Description: "Review a diff for correctness, style, and hidden edge cases",
			Content:     "Act as a senior engineer reviewing the following change. Point out correctness bugs first, then edge cases, then style. For each finding, quote the relevant lines and suggest a concrete fix. Finish with a one-paragraph summary of overall risk.\n\n[PASTE DIFF]",
			CategoryID:  programming.ID,
			AuthorID:    adminID,
			Tags:        models.StringList{"code-review", "debugging"},
			Difficulty:  models.DifficultyAdvanced,
			Type:        models.TypeCoding,
			IsPremium:   true,
			IsPublished: true,
		},
	}

	for _, prompt := range samplePrompts {
		err := db.Where("slug = ?", prompt.Slug).
			Attrs(prompt).
			FirstOrCreate(&models.Prompt{}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
