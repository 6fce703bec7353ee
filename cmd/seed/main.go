// Seeds the catalog with generated swag items. Safe to re-run: it wipes the
// item table first.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	"github.com/yungbote/swagship-backend/internal/db"
	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

const targetCount = 1000

type template struct {
	Name        string
	BasePrice   float64
	Description string
}

type category struct {
	Name     string
	Items    []template
	Variants []string
	Sizes    []string
}

var catalogTemplates = []category{
	{
		Name: "Apparel",
		Items: []template{
			{"Classic Logo T-Shirt", 25, "Comfortable cotton t-shirt with company logo"},
			{"Premium Polo Shirt", 45, "Professional polo shirt with embroidered logo"},
			{"Zip-Up Hoodie", 65, "Cozy hoodie with front zip and company branding"},
			{"Pullover Hoodie", 55, "Classic pullover hoodie with screen-printed logo"},
			{"Crewneck Sweatshirt", 50, "Soft crewneck sweatshirt with subtle branding"},
			{"Quarter-Zip Pullover", 60, "Athletic quarter-zip with performance fabric"},
			{"Baseball Cap", 22, "Adjustable cap with embroidered logo"},
			{"Beanie", 18, "Warm knit beanie with company tag"},
			{"Performance Jacket", 85, "Lightweight water-resistant jacket"},
			{"Fleece Vest", 55, "Comfortable fleece vest for layering"},
			{"Athletic Shorts", 35, "Breathable shorts with side logo"},
			{"Jogger Pants", 48, "Comfortable joggers with drawstring waist"},
			{"Long Sleeve Tee", 30, "Long sleeve cotton t-shirt"},
			{"Tank Top", 20, "Lightweight tank top for summer"},
			{"Windbreaker", 70, "Packable windbreaker jacket"},
		},
		Variants: []string{"Navy", "Black", "Charcoal", "Heather Gray", "White", "Forest Green", "Burgundy", "Royal Blue"},
		Sizes:    []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		Name: "Tech",
		Items: []template{
			{"Wireless Mouse", 35, "Ergonomic wireless mouse with company logo"},
			{"Mechanical Keyboard", 89, "RGB mechanical keyboard with custom keycaps"},
			{"USB-C Hub", 55, "7-in-1 USB-C hub for laptops"},
			{"Wireless Earbuds", 79, "True wireless earbuds with charging case"},
			{"Portable Charger", 40, "10000mAh power bank with dual USB"},
			{"Webcam Cover", 8, "Sliding webcam privacy cover"},
			{"Phone Stand", 25, "Adjustable aluminum phone stand"},
			{"Laptop Stand", 45, "Ergonomic laptop riser"},
			{"Cable Organizer", 15, "Magnetic cable management clips"},
			{"Wireless Charging Pad", 30, "Fast wireless charging pad"},
			{"Bluetooth Speaker", 55, "Portable waterproof speaker"},
			{"USB Flash Drive", 18, "64GB USB 3.0 flash drive"},
			{"Screen Cleaning Kit", 12, "Microfiber cloth and cleaning solution"},
			{"LED Desk Lamp", 48, "Adjustable LED lamp with USB charging"},
			{"Smart Tracker", 28, "Bluetooth tracker for keys and bags"},
		},
		Variants: []string{"Standard"},
	},
	{
		Name: "Office",
		Items: []template{
			{"Leather Notebook", 28, "Premium leather-bound notebook"},
			{"Hardcover Journal", 22, "Lined hardcover journal with ribbon"},
			{"Ballpoint Pen Set", 35, "Set of 3 premium ballpoint pens"},
			{"Fountain Pen", 65, "Elegant fountain pen with custom engraving"},
			{"Desk Organizer", 38, "Wooden desk organizer with compartments"},
			{"Mouse Pad", 18, "Large extended mouse pad with logo"},
			{"Desk Mat", 35, "Full desk leather mat"},
			{"Sticky Notes Set", 12, "Branded sticky notes in various sizes"},
			{"Business Card Holder", 25, "Metal business card holder"},
			{"Desk Clock", 42, "Minimalist desk clock with logo"},
			{"Bookmark Set", 10, "Set of 5 metal bookmarks"},
			{"Document Folder", 20, "Leather document portfolio"},
			{"Paperweight", 30, "Crystal paperweight with logo"},
			{"Desk Name Plate", 45, "Personalized desk name plate"},
			{"Whiteboard Set", 55, "Magnetic whiteboard with markers"},
		},
		Variants: []string{"Black", "Brown", "Navy", "Gray"},
	},
	{
		Name: "Drinkware",
		Items: []template{
			{"Insulated Tumbler", 28, "20oz stainless steel tumbler"},
			{"Coffee Mug", 15, "Ceramic mug with company logo"},
			{"Travel Mug", 25, "Spill-proof travel coffee mug"},
			{"Water Bottle", 22, "BPA-free 24oz water bottle"},
			{"Insulated Water Bottle", 35, "32oz vacuum insulated bottle"},
			{"Wine Tumbler", 20, "Insulated wine tumbler with lid"},
			{"Glass Bottle", 18, "Borosilicate glass bottle with sleeve"},
			{"Collapsible Bottle", 15, "Silicone collapsible water bottle"},
			{"Cocktail Shaker", 30, "Stainless steel cocktail shaker"},
			{"Beer Mug", 18, "Glass beer mug with logo"},
			{"Espresso Cup Set", 38, "Set of 4 espresso cups"},
			{"Thermos", 40, "Large capacity thermos flask"},
			{"Infuser Bottle", 25, "Water bottle with fruit infuser"},
			{"Coffee Tumbler", 32, "Ceramic-lined coffee tumbler"},
			{"Can Cooler", 12, "Neoprene can cooler sleeve"},
		},
		Variants: []string{"Black", "White", "Navy", "Stainless", "Matte Black", "Rose Gold"},
	},
	{
		Name: "Bags",
		Items: []template{
			{"Laptop Backpack", 75, "Professional laptop backpack with padded compartment"},
			{"Tote Bag", 35, "Canvas tote bag with company logo"},
			{"Messenger Bag", 65, "Leather messenger bag for professionals"},
			{"Duffel Bag", 55, "Sports duffel bag with shoe compartment"},
			{"Drawstring Bag", 15, "Lightweight drawstring backpack"},
			{"Cooler Bag", 40, "Insulated lunch cooler bag"},
			{"Laptop Sleeve", 30, "Padded laptop sleeve with pocket"},
			{"Weekender Bag", 85, "Premium weekender travel bag"},
			{"Toiletry Bag", 28, "Hanging toiletry bag"},
			{"Tech Pouch", 25, "Organizer pouch for cables and accessories"},
			{"Gym Bag", 45, "Gym bag with wet pocket"},
			{"Crossbody Bag", 38, "Compact crossbody bag"},
			{"Fanny Pack", 22, "Adjustable belt bag"},
			{"Shoe Bag", 18, "Travel shoe bag set"},
			{"Garment Bag", 50, "Suit garment bag for travel"},
		},
		Variants: []string{"Black", "Navy", "Gray", "Charcoal", "Olive"},
	},
	{
		Name: "Accessories",
		Items: []template{
			{"Sunglasses", 45, "UV protection sunglasses with case"},
			{"Umbrella", 30, "Compact automatic umbrella"},
			{"Golf Umbrella", 45, "Large golf umbrella with logo"},
			{"Keychain", 12, "Metal keychain with company logo"},
			{"Lanyard", 8, "Breakaway lanyard with badge holder"},
			{"Scarf", 35, "Soft knit scarf with company colors"},
			{"Gloves", 28, "Touchscreen compatible gloves"},
			{"Watch", 95, "Minimalist watch with company logo"},
			{"Socks Set", 20, "Pack of 3 branded socks"},
			{"Belt", 40, "Leather belt with subtle branding"},
			{"Wallet", 55, "Leather bifold wallet"},
			{"Card Holder", 30, "Slim card holder wallet"},
			{"Tie", 35, "Silk tie with company pattern"},
			{"Pin Set", 15, "Collectible enamel pin set"},
			{"Badge Holder", 18, "Retractable badge reel"},
		},
		Variants: []string{"Black", "Navy", "Brown", "Gray", "Company Blue"},
	},
}

var variantColors = map[string]string{
	"Navy":         "1a237e",
	"Black":        "212121",
	"Charcoal":     "424242",
	"Heather Gray": "9e9e9e",
	"White":        "fafafa",
	"Forest Green": "1b5e20",
	"Burgundy":     "880e4f",
	"Royal Blue":   "1565c0",
	"Brown":        "5d4037",
	"Gray":         "757575",
	"Stainless":    "b0bec5",
	"Matte Black":  "263238",
	"Rose Gold":    "e8b4b8",
	"Olive":        "827717",
	"Company Blue": "1a73e8",
	"Standard":     "1a73e8",
}

func imageURL(itemName, variant string) string {
	bgColor, ok := variantColors[variant]
	if !ok {
		bgColor = "1a73e8"
	}
	words := strings.Fields(itemName)
	if len(words) > 2 {
		words = words[:2]
	}
	text := url.QueryEscape(strings.Join(words, "+"))
	return fmt.Sprintf("https://placehold.co/400x400/%s/ffffff?text=%s", bgColor, text)
}

func buildItem(rng *rand.Rand, cat category, t template, name string) *types.Item {
	priceVariation := (rng.Float64() - 0.5) * 10
	price := decimal.NewFromFloat(t.BasePrice + priceVariation).Round(2)
	if price.LessThan(decimal.NewFromInt(5)) {
		price = decimal.NewFromInt(5)
	}
	meta, _ := json.Marshal(map[string]any{
		"variants": cat.Variants,
		"sizes":    cat.Sizes,
	})
	return &types.Item{
		Name:        name,
		Description: t.Description,
		Category:    cat.Name,
		ImageURL:    imageURL(t.Name, pickVariant(name, cat)),
		Price:       price,
		Stock:       rng.Intn(150) + 50,
		Metadata:    datatypes.JSON(meta),
	}
}

func pickVariant(name string, cat category) string {
	for _, v := range cat.Variants {
		if strings.Contains(name, v) {
			return v
		}
	}
	return "Standard"
}

func generateItems(rng *rand.Rand) []*types.Item {
	items := make([]*types.Item, 0, targetCount)
	for len(items) < targetCount {
		for _, cat := range catalogTemplates {
			for _, t := range cat.Items {
				for _, variant := range cat.Variants {
					if len(items) >= targetCount {
						return items
					}
					if cat.Name == "Apparel" && len(cat.Sizes) > 0 {
						for _, size := range cat.Sizes {
							if len(items) >= targetCount {
								return items
							}
							name := fmt.Sprintf("%s - %s (%s)", t.Name, variant, size)
							items = append(items, buildItem(rng, cat, t, name))
						}
					} else {
						name := t.Name
						if variant != "Standard" {
							name = t.Name + " - " + variant
						}
						items = append(items, buildItem(rng, cat, t, name))
					}
				}
			}
		}
	}
	return items
}

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := pg.DB()
	itemRepo := catalog.NewItemRepo(thePG, log)

	log.Info("Starting catalog seed...")

	if err := thePG.Exec(`DELETE FROM "item"`).Error; err != nil {
		log.Fatal("Failed to clear items", "error", err)
	}

	rng := rand.New(rand.NewSource(42))
	items := generateItems(rng)
	log.Info("Generated items", "count", len(items))

	const batchSize = 100
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]
		g.Go(func() error {
			_, err := itemRepo.Create(ctx, nil, batch)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("Seed failed", "error", err)
	}
	log.Info("Catalog seed complete", "items", len(items))
}
