// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contact

import (
	"fmt"
	"math/rand"
	"strings"
)

var (
	sampleNames  = []string{"Cliodhna", "Zach", "Cory", "Betty", "Abraham", "Jordan", "Mary", "Joseph", "Zed"}
	samplePhones = []string{"0855881892", "0884624315", "0850602678", "0868026665", "0887178084", "0858573472", "0856776227", "0873787608", "0890402726"}
)

// Sample returns the built-in demo records.
func Sample() []Record {
	records := make([]Record, len(sampleNames))
	for i := range sampleNames {
		records[i] = Record{
			Name:    sampleNames[i],
			Phone:   samplePhones[i],
			Address: fmt.Sprintf("Apt %d", i+1),
		}
	}
	return records
}

// SampleWithRandomPhones returns the demo records with generated numbers.
func SampleWithRandomPhones(r *rand.Rand) []Record {
	records := Sample()
	for i := range records {
		records[i].Phone = RandomPhone(r)
	}
	return records
}

// RandomPhone returns a ten digit Irish mobile number: 08, a network digit
// between 5 and 9, then seven subscriber digits.
func RandomPhone(r *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(10)
	sb.WriteString("08")
	sb.WriteByte(byte('5' + r.Intn(5)))
	for i := 0; i < 7; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
	return sb.String()
}
