package match

import (
	"sort"

	"jadwalkajian/backend/internal/broadcast/extract"
	"jadwalkajian/backend/internal/models"
)

// Threshold above which two normalized names count as the same venue or
// speaker.
const Threshold = 0.8

// One-sided speaker information must neither confirm nor block a duplicate
// verdict on its own.
const partialSpeakerScore = 0.5

// FindDuplicates compares a candidate entry against stored schedules that
// share its exact date string; callers pre-filter by date. All qualifying
// collisions are returned so an operator can review every one, not just the
// best.
func FindDuplicates(candidate models.ScheduleEntry, existing []models.Schedule) []models.DuplicateMatch {
	candidateVenue := extract.NormalizeName(candidate.VenueName)
	candidateSpeaker := extract.NormalizeName(candidate.Speaker)

	matches := make([]models.DuplicateMatch, 0)
	for _, schedule := range existing {
		venueSim := Similarity(candidateVenue, extract.NormalizeName(schedule.VenueName))
		speakerSim := speakerSimilarity(candidateSpeaker, extract.NormalizeName(schedule.Speaker))
		if venueSim > Threshold && speakerSim > Threshold {
			matches = append(matches, models.DuplicateMatch{
				Schedule:   schedule,
				VenueSim:   venueSim,
				SpeakerSim: speakerSim,
			})
		}
	}
	return matches
}

// IsDuplicate reports the verdict plus the colliding schedules.
func IsDuplicate(candidate models.ScheduleEntry, existing []models.Schedule) (bool, []models.DuplicateMatch) {
	matches := FindDuplicates(candidate, existing)
	return len(matches) > 0, matches
}

// speakerSimilarity scores two normalized speaker keys with the asymmetric
// fallbacks: both absent is a perfect match, one absent a weak partial one.
func speakerSimilarity(a, b string) float64 {
	switch {
	case a == "" && b == "":
		return 1
	case a == "" || b == "":
		return partialSpeakerScore
	default:
		return Similarity(a, b)
	}
}

// GroupVariants clusters raw name spellings (venues or speakers, from the
// whole dataset, no date constraint) by pairwise similarity and proposes the
// most frequent raw form as the canonical representative.
func GroupVariants(rawNames []string) []models.NameGroup {
	type variant struct {
		raw   string
		key   string
		count int
	}

	counts := make(map[string]*variant)
	order := make([]string, 0)
	for _, raw := range rawNames {
		key := extract.NormalizeName(raw)
		if key == "" {
			continue
		}
		if v, ok := counts[raw]; ok {
			v.count++
			continue
		}
		counts[raw] = &variant{raw: raw, key: key, count: 1}
		order = append(order, raw)
	}

	variants := make([]*variant, 0, len(order))
	for _, raw := range order {
		variants = append(variants, counts[raw])
	}
	// Most frequent first so cluster seeds become the canonical forms.
	sort.SliceStable(variants, func(i, j int) bool { return variants[i].count > variants[j].count })

	groups := make([]models.NameGroup, 0)
	seeds := make([]string, 0)
	assigned := make([][]*variant, 0)
	for _, v := range variants {
		placed := false
		for i, seedKey := range seeds {
			if Similarity(v.key, seedKey) > Threshold {
				assigned[i] = append(assigned[i], v)
				placed = true
				break
			}
		}
		if !placed {
			seeds = append(seeds, v.key)
			assigned = append(assigned, []*variant{v})
		}
	}

	for _, cluster := range assigned {
		if len(cluster) < 2 {
			continue
		}
		group := models.NameGroup{Canonical: cluster[0].raw}
		for _, v := range cluster {
			group.Total += v.count
			if v.raw != group.Canonical {
				group.Variants = append(group.Variants, v.raw)
			}
		}
		groups = append(groups, group)
	}
	return groups
}
