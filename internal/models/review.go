// review.go
//
// A catalog data service for industrial plastic materials
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of materialsdb.
// materialsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// materialsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with materialsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package models

import (
	"time"
)

// Review is a user's experience report on a material.
// One review per (UserID, MaterialID).
type Review struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           string    `gorm:"column:user_id;size:64;not null;uniqueIndex:idx_reviews_user_material,priority:1" json:"userId"`
	MaterialID       uint64    `gorm:"column:material_id;not null;uniqueIndex:idx_reviews_user_material,priority:2;index:idx_reviews_material" json:"materialId"`
	Rating           int       `gorm:"not null" json:"rating"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Body             *string   `gorm:"type:text" json:"body"`
	Application      *string   `gorm:"size:255" json:"application"`
	ProcessingMethod *string   `gorm:"column:processing_method;size:100" json:"processingMethod"`
	ProcessDetails   JSON      `gorm:"column:process_details" json:"processDetails"`
	VerifiedPurchase bool      `gorm:"column:verified_purchase;not null;default:false" json:"verifiedPurchase"`
	HelpfulCount     int       `gorm:"column:helpful_count;not null;default:0" json:"helpfulCount"`
	CreatedAt        time.Time `gorm:"index:idx_reviews_created" json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"-"`
}

// ReviewHelpful records that a user found a review helpful.
// (ReviewID, UserID) is unique.
type ReviewHelpful struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID  uint64    `gorm:"column:review_id;not null;uniqueIndex:idx_review_helpfuls_review_user,priority:1" json:"reviewId"`
	UserID    string    `gorm:"column:user_id;size:64;not null;uniqueIndex:idx_review_helpfuls_review_user,priority:2" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// TableName overrides the table name for ReviewHelpful
func (ReviewHelpful) TableName() string {
	return "review_helpfuls"
}
