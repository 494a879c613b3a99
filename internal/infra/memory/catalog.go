package memory

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"videonews-feed/internal/domain/entity"
)

// VideoCatalog is the in-memory VideoRepository backing the public feed.
// The catalog is the request handlers' read-mostly working set; admin
// operations mutate Visible and Category in place, nothing is ever deleted.
type VideoCatalog struct {
	mu     sync.RWMutex
	byID   map[string]*entity.Video
	order  []string
}

// NewVideoCatalog builds a catalog from the given videos, preserving order.
func NewVideoCatalog(videos []entity.Video) *VideoCatalog {
	c := &VideoCatalog{
		byID:  make(map[string]*entity.Video, len(videos)),
		order: make([]string, 0, len(videos)),
	}
	for i := range videos {
		v := videos[i]
		c.byID[v.ID] = &v
		c.order = append(c.order, v.ID)
	}
	return c
}

// List returns every video in insertion order, including hidden ones.
func (c *VideoCatalog) List(_ context.Context) ([]entity.Video, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Video, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out, nil
}

// Get returns a copy of the video with the given id.
func (c *VideoCatalog) Get(_ context.Context, id string) (*entity.Video, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("video %q: %w", id, entity.ErrNotFound)
	}
	cp := *v
	return &cp, nil
}

// SetVisible flips the moderation visibility flag of a video.
func (c *VideoCatalog) SetVisible(_ context.Context, id string, visible bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("video %q: %w", id, entity.ErrNotFound)
	}
	v.Visible = visible
	return nil
}

// SetCategory reassigns a video to another category.
func (c *VideoCatalog) SetCategory(_ context.Context, id string, category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("video %q: %w", id, entity.ErrNotFound)
	}
	v.Category = category
	return nil
}

// catalogSeed fixes the pseudo-random stream so repeated requests against
// an unchanged catalog return identical pages.
const catalogSeed = 20240601

// Per-category demo titles, mirroring the French Google News sections.
var catalogTitles = map[string][]string{
	"pour-vous": {
		"Breaking: Nouvelle politique climatique annoncée",
		"Élections: Les derniers sondages révèlent des surprises",
		"Économie: Les marchés réagissent aux nouvelles mesures",
		"Sport: Victoire historique de l'équipe de France",
		"Tech: Intelligence artificielle, révolution en cours",
	},
	"actualite-locale": {
		"Paris: Nouvelle ligne de métro inaugurée",
		"Lyon: Festival culturel attire des milliers de visiteurs",
		"Marseille: Projet urbain ambitieux dévoilé",
		"Toulouse: Innovation spatiale, nouvelle mission",
		"Bordeaux: Vignobles face aux défis climatiques",
	},
	"france": {
		"Assemblée Nationale: Vote crucial sur la réforme",
		"Gouvernement: Remaniement ministériel en vue",
		"Justice: Affaire judiciaire majeure développements",
		"Éducation: Réforme scolaire, réactions mitigées",
		"Sécurité: Nouvelles mesures antiterroristes",
	},
	"monde": {
		"Ukraine: Négociations diplomatiques intensifiées",
		"États-Unis: Élections présidentielles, candidats",
		"Chine: Économie mondiale, impacts analysés",
		"Brexit: Conséquences sur l'Europe évaluées",
		"Afrique: Développement durable, projets innovants",
	},
	"economie": {
		"CAC 40: Envolée des valeurs technologiques",
		"Crypto: Bitcoin franchit nouveau seuil historique",
		"PME: Plan de relance, premiers résultats",
		"Commerce: Accords internationaux signés récemment",
		"Inflation: Impact consommation, analyse détaillée",
	},
	"science": {
		"Espace: Découverte exoplanète potentiellement habitable",
		"Climat: Recherche révolutionnaire sur réchauffement",
		"Médecine: Percée majeure traitement cancer",
		"Physique: Expérience quantique résultats surprenants",
		"Biologie: Génétique, avancées thérapeutiques prometteuses",
	},
	"sante": {
		"Covid-19: Nouveau variant détecté, recommandations",
		"Nutrition: Étude révèle bienfaits alimentation méditerranéenne",
		"Mental: Campagne sensibilisation santé psychologique",
		"Recherche: Traitement innovant maladie rare",
		"Prévention: Dépistage précoce, nouvelles techniques",
	},
	"technologie": {
		"IA: ChatGPT révolutionne industrie éducative",
		"Smartphones: Nouveau flagship, fonctionnalités révolutionnaires",
		"Cybersécurité: Alerte menaces, protection renforcée",
		"Start-up: Licorne française lève fonds record",
		"Informatique: Quantique, avancées computationnelles majeures",
	},
	"culture": {
		"Cannes: Palme d'or 2024, cinéma français",
		"Musique: Festival été, programmation exceptionnelle",
		"Littérature: Prix Goncourt, sélection annoncée",
		"Patrimoine: Restauration monument historique achevée",
		"Art: Exposition moderne, succès public critique",
	},
	"sport": {
		"Football: PSG remporte match décisif européen",
		"Tennis: Roland Garros, finale française historique",
		"Rugby: XV France prépare tournoi",
		"JO 2024: Athlètes français, préparation intensive",
		"Cyclisme: Tour France, étape spectaculaire",
	},
	"divertissement": {
		"Cinéma: Blockbuster français cartonne international",
		"TV: Nouvelle série succès plateforme française",
		"Célébrités: Interview exclusive star internationale",
		"Mode: Fashion Week Paris, créateurs émergents",
		"Gaming: Jeu vidéo français remporte prix",
	},
}

// Iterating a map would randomize generation order; the slug list pins it.
var catalogCategoryOrder = []string{
	"pour-vous", "actualite-locale", "france", "monde", "economie",
	"science", "sante", "technologie", "culture", "divertissement", "sport",
}

var catalogTags = []string{
	"breaking-news", "elections-2024", "climate-summit", "tech-innovation",
	"covid-updates", "ukraine-conflict", "economic-crisis", "sports-finals",
	"cultural-events", "health-breakthrough",
}

var catalogSources = []entity.VideoSource{
	entity.SourceYouTube, entity.SourceRSS, entity.SourceCreator,
}

// GenerateCatalog produces the deterministic demo catalog: five videos per
// category, published within the trailing week, with synthetic engagement
// numbers. The first video of each category gets a 3x view boost so every
// section has a clear headliner.
func GenerateCatalog(now time.Time) []entity.Video {
	rng := rand.New(rand.NewSource(catalogSeed)) // #nosec G404 -- demo data, determinism wanted
	var videos []entity.Video
	id := 1

	for _, category := range catalogCategoryOrder {
		for i, title := range catalogTitles[category] {
			daysAgo := rng.Intn(7) + 1
			duration := rng.Intn(1800) + 30
			views := rng.Intn(2_000_000) + 1000
			likes := int(float64(views) * (rng.Float64()*0.08 + 0.02))
			comments := int(float64(likes) * (rng.Float64()*0.2 + 0.1))
			src := catalogSources[rng.Intn(len(catalogSources))]
			tag := catalogTags[rng.Intn(len(catalogTags))]
			subscribers := rng.Intn(1_000_000) + 50_000

			if i == 0 {
				views *= 3
			}

			videos = append(videos, entity.Video{
				ID:          fmt.Sprintf("%d", id),
				Title:       title,
				Description: title + " - Analyse approfondie avec experts et témoignages. Restez informé des derniers développements.",
				Category:    category,
				DynamicTags: []string{tag},
				Source:      src,
				URL:         fmt.Sprintf("https://example.com/video/%d", id),
				Thumbnail:   fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=640&h=360", 1_000_000+id, 1_000_000+id),
				DurationSec: duration,
				PublishedAt: now.Add(-time.Duration(daysAgo) * 24 * time.Hour),
				Views:       views,
				Likes:       likes,
				Comments:    comments,
				Language:    entity.LanguageFrench,
				Visible:     true,
				Creator: &entity.Creator{
					ID:              fmt.Sprintf("creator-%d", i/2+1),
					Name:            catalogCreatorName(i),
					SubscriberCount: subscribers,
				},
			})
			id++
		}
	}
	return videos
}

func catalogCreatorName(index int) string {
	switch index {
	case 0:
		return "BFM TV"
	case 1:
		return "France Info"
	case 2:
		return "Le Figaro"
	default:
		return fmt.Sprintf("Créateur %d", index/2+1)
	}
}
