// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package seed loads the sample topics and places shown on first start.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/models"
)

// Sample area around central Seoul.
const (
	minLat = 37.55
	minLng = 126.95
	span   = 0.08
)

var placeNames = []string{
	"카페", "식당", "서점", "공원", "미용실", "편의점", "약국", "도서관", "헬스장", "마트",
	"분식집", "피자집", "치킨집", "병원", "베이커리", "커피숍", "PC방", "노래방", "호텔", "게스트하우스",
}

// Topic is a sample topic with the descriptions its places draw from.
type Topic struct {
	Name         string
	Descriptions []string
}

// DefaultTopics are created in this order, so their ids are stable.
var DefaultTopics = []Topic{
	{
		Name: "휠체어 가능한 가게",
		Descriptions: []string{
			"휠체어 입장 가능",
			"장애인 화장실 있음",
			"입구에 경사로 설치",
			"직원들이 친절하게 도와줌",
			"테이블 간격 넓음",
			"엘리베이터 있음",
			"장애인 주차장 있음",
			"화장실 접근성 우수",
			"출입문 자동문",
			"휠체어 이동 동선 확보",
		},
	},
	{
		Name: "노키즈존",
		Descriptions: []string{
			"노키즈존(아동 출입 제한)",
			"만 13세 미만 출입 불가",
			"조용한 분위기 유지",
			"아이 동반 시 입장 제한",
			"성인 전용 공간",
			"유아/아동 동반 불가",
			"노키즈존 안내문 부착",
			"아이 울음소리 걱정 없음",
			"어린이 출입 제한",
			"성인만 이용 가능",
		},
	},
}

// Target is the part of the entity store the seeder writes to.
type Target interface {
	CreateTopic(name string) (int64, bool)
	CreatePlace(in models.PlaceInput) (int64, bool)
}

// Result summarizes what Load created.
type Result struct {
	Topics int
	Places int
}

// Load creates DefaultTopics and placesPerTopic generated places for each,
// all topics first and then the places topic by topic. The same randomSeed
// on an empty store always yields the same ids, names and coordinates.
func Load(target Target, randomSeed int64, placesPerTopic int) (Result, error) {
	rng := rand.New(rand.NewSource(randomSeed)) //nolint:gosec // sample data, not security sensitive

	var res Result
	ids := make([]int64, len(DefaultTopics))
	for i, topic := range DefaultTopics {
		id, ok := target.CreateTopic(topic.Name)
		if !ok {
			return res, fmt.Errorf("create sample topic %q", topic.Name)
		}
		ids[i] = id
		res.Topics++
	}

	for i, topic := range DefaultTopics {
		for n := 0; n < placesPerTopic; n++ {
			in := generatePlace(rng, ids[i], topic.Descriptions)
			if _, ok := target.CreatePlace(in); !ok {
				return res, fmt.Errorf("create sample place %q", in.Name)
			}
			res.Places++
		}
	}

	logging.Info().
		Int("topics", res.Topics).
		Int("places", res.Places).
		Int64("random_seed", randomSeed).
		Msg("Sample data loaded")
	return res, nil
}

func generatePlace(rng *rand.Rand, topicID int64, descriptions []string) models.PlaceInput {
	return models.PlaceInput{
		TopicID:     topicID,
		Name:        fmt.Sprintf("%s %d", placeNames[rng.Intn(len(placeNames))], rng.Intn(1000)),
		Description: descriptions[rng.Intn(len(descriptions))],
		Coordinate: &models.Coordinate{
			Lat: minLat + rng.Float64()*span,
			Lng: minLng + rng.Float64()*span,
		},
	}
}
