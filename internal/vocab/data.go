package vocab

import "github.com/pantrylens/backend/internal/domain"

// defaultGroups holds the canonical ingredient tags per food category.
// The source catalog is Dutch, so the vocabulary is too.
var defaultGroups = []TagGroup{
	{Name: "groente", Tags: []domain.CanonicalTag{
		"ui", "paprika", "tomaat", "komkommer", "wortel", "courgette",
		"aubergine", "broccoli", "bloemkool", "sla", "spinazie", "prei",
		"champignons", "knoflook", "aardappel", "mais", "pompoen", "bleekselderij",
	}},
	{Name: "fruit", Tags: []domain.CanonicalTag{
		"appel", "banaan", "citroen", "limoen", "sinaasappel", "aardbei",
		"mango", "druiven", "peer",
	}},
	{Name: "zuivel", Tags: []domain.CanonicalTag{
		"melk", "halfvolle melk", "boter", "roomboter", "kaas", "yoghurt",
		"room", "ei", "kwark", "creme fraiche", "geraspte kaas", "feta",
		"mozzarella", "parmezaan",
	}},
	{Name: "vlees", Tags: []domain.CanonicalTag{
		"kip", "kipfilet", "gehakt", "rundvlees", "spek", "worst",
		"kipdijfilet", "varkensvlees", "biefstuk",
	}},
	{Name: "vis", Tags: []domain.CanonicalTag{
		"zalm", "tonijn", "garnalen", "kabeljauw", "witvis",
	}},
	{Name: "graan", Tags: []domain.CanonicalTag{
		"rijst", "basmatirijst", "pasta", "spaghetti", "macaroni", "penne",
		"brood", "bloem", "tarwebloem", "couscous", "noedels", "wraps",
		"havermout", "quinoa",
	}},
	{Name: "olie", Tags: []domain.CanonicalTag{
		"olie", "olijfolie", "zonnebloemolie", "arachideolie", "sesamolie",
		"kokosolie",
	}},
	{Name: "kruiden", Tags: []domain.CanonicalTag{
		"zout", "peper", "paprikapoeder", "komijn", "oregano", "basilicum",
		"tijm", "kerrie", "kaneel", "gember", "koriander", "peterselie",
		"laurierblad", "chilipoeder", "kurkuma", "bouillonblokje",
	}},
	{Name: "saus", Tags: []domain.CanonicalTag{
		"sojasaus", "tomatenpuree", "mayonaise", "ketchup", "mosterd",
		"azijn", "natuurazijn", "sambal", "pesto", "vissaus", "passata",
	}},
	{Name: "peulvruchten", Tags: []domain.CanonicalTag{
		"bonen", "kidneybonen", "kikkererwten", "linzen", "erwten", "tofu",
	}},
	{Name: "noten", Tags: []domain.CanonicalTag{
		"pinda", "amandel", "walnoot", "cashewnoten", "pijnboompitten",
		"pindakaas",
	}},
	{Name: "zoet", Tags: []domain.CanonicalTag{
		"suiker", "kristalsuiker", "honing", "chocolade", "vanillesuiker",
		"stroop",
	}},
}

// defaultBrands lists retailer and manufacturer tokens stripped from product
// names before candidate extraction. Multi-word brands are matched as whole
// phrases.
var defaultBrands = []string{
	"jumbo", "ah", "albert heijn", "lidl", "aldi", "plus", "coop", "spar",
	"picnic", "hak", "bonduelle", "unox", "knorr", "maggi", "calve", "heinz",
	"honig", "de ruijter", "campina", "arla", "alpro", "becel", "blue band",
	"zaanse hoeve", "g woon", "1 de beste", "fairtrade original", "conimex",
	"grand italia", "lassie", "bertolli",
}

// defaultCategoryRules maps catalog category keywords onto tag groups, in
// priority order. Category metadata beats free-text name matching, so the
// keys are deliberately broad.
var defaultCategoryRules = []CategoryRule{
	{Key: "groente", Tags: tagsOf("groente")},
	{Key: "aardappel", Tags: []domain.CanonicalTag{"aardappel"}},
	{Key: "fruit", Tags: tagsOf("fruit")},
	{Key: "zuivel", Tags: tagsOf("zuivel")},
	{Key: "kaas", Tags: []domain.CanonicalTag{"kaas", "geraspte kaas", "feta", "mozzarella", "parmezaan"}},
	{Key: "eieren", Tags: []domain.CanonicalTag{"ei"}},
	{Key: "vlees", Tags: tagsOf("vlees")},
	{Key: "kip", Tags: []domain.CanonicalTag{"kip", "kipfilet", "kipdijfilet"}},
	{Key: "vis", Tags: tagsOf("vis")},
	{Key: "pasta", Tags: []domain.CanonicalTag{"pasta", "spaghetti", "macaroni", "penne"}},
	{Key: "rijst", Tags: []domain.CanonicalTag{"rijst"}},
	{Key: "brood", Tags: []domain.CanonicalTag{"brood", "wraps"}},
	{Key: "olie", Tags: tagsOf("olie")},
	{Key: "kruiden", Tags: tagsOf("kruiden")},
	{Key: "specerijen", Tags: tagsOf("kruiden")},
	{Key: "sauzen", Tags: tagsOf("saus")},
	{Key: "peulvruchten", Tags: tagsOf("peulvruchten")},
	{Key: "noten", Tags: tagsOf("noten")},
	{Key: "bakproducten", Tags: []domain.CanonicalTag{"bloem", "suiker", "vanillesuiker"}},
}

// defaultExcludedCategories marks non-food catalog categories. A product
// whose categories all match this list is stored untagged.
var defaultExcludedCategories = []string{
	"schoonmaak", "wasmiddel", "verzorging", "drogisterij", "huishouden",
	"huisdier", "non-food", "baby", "cosmetica", "tijdschriften",
}

// defaultVariants maps a staple to the named variants that can stand in for
// it (a recipe asking for olive oil is servable with the sunflower oil the
// user keeps). Keys and values are pre-normalized. Variants that contain the
// staple name itself are pointless here: the resolver treats those as the
// staple under a different surface form, not as a variant.
var defaultVariants = map[string][]string{
	"zonnebloemolie": {"olijfolie", "arachideolie", "koolzaadolie", "kokosolie", "sesamolie"},
	"olijfolie":      {"zonnebloemolie", "arachideolie", "koolzaadolie"},
	"natuurazijn":    {"wittewijnazijn", "balsamicoazijn", "appelazijn", "rijstazijn"},
	"tarwebloem":     {"speltbloem", "patentbloem", "zelfrijzend bakmeel"},
	"kristalsuiker":  {"rietsuiker", "basterdsuiker", "poedersuiker"},
	"halfvolle melk": {"havermelk", "sojamelk", "amandelmelk"},
	"basmatirijst":   {"zilvervliesrijst", "pandanrijst", "jasmijnrijst"},
	"roomboter":      {"margarine", "bakboter"},
	"spaghetti":      {"macaroni", "penne", "fusilli", "tagliatelle"},
}

// tagsOf returns the tags of a named default group. Panics on an unknown
// name, which is a programming error in the tables above.
func tagsOf(name string) []domain.CanonicalTag {
	for _, g := range defaultGroups {
		if g.Name == name {
			return g.Tags
		}
	}
	panic("vocab: unknown tag group " + name)
}
