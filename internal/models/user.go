// user.go
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

// User is the local mirror of an identity provider account.
// ID is the opaque provider id.
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           *string   `gorm:"size:255;index:idx_users_email" json:"email"`
	FirstName       *string   `gorm:"column:first_name;size:255" json:"firstName"`
	LastName        *string   `gorm:"column:last_name;size:255" json:"lastName"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;size:2048" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Favorite marks a material as favorited by a user.
// (UserID, MaterialID) is unique.
type Favorite struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"column:user_id;size:64;not null;uniqueIndex:idx_favorites_user_material,priority:1" json:"userId"`
	MaterialID uint64    `gorm:"column:material_id;not null;uniqueIndex:idx_favorites_user_material,priority:2;index:idx_favorites_material" json:"materialId"`
	CreatedAt  time.Time `json:"createdAt"`

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// TableName overrides the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}
