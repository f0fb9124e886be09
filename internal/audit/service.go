package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"cati-backend/internal/database"
	"cati-backend/internal/models"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		Undone:      false,
		IsUndone:    false,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	return nil
}

// UndoLog - Bir audit log'u undo et
func UndoLog(logID uint, userID uint, userName string) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log bulunamadı: %w", err)
	}

	// Zaten undo edilmiş mi?
	if log.IsUndone {
		return fmt.Errorf("bu işlem zaten geri alınmış")
	}

	switch log.Action {
	case models.AuditActionCreate:
		// Create ise entity'yi sil
		if err := deleteEntity(log.EntityType, log.EntityID); err != nil {
			return fmt.Errorf("entity silinemedi: %w", err)
		}

	case models.AuditActionUpdate:
		// Update ise önceki haline geri döndür
		if err := restoreEntity(log.EntityType, log.EntityID, log.BeforeData); err != nil {
			return fmt.Errorf("entity geri yüklenemedi: %w", err)
		}

	case models.AuditActionDelete:
		// Delete ise entity'yi geri oluştur
		if err := recreateEntity(log.EntityType, log.AfterData); err != nil {
			return fmt.Errorf("entity geri oluşturulamadı: %w", err)
		}

	default:
		return fmt.Errorf("bu işlem türü geri alınamaz")
	}

	// Log'u işaretle
	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = &userID
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("log güncellenemedi: %w", err)
	}

	// Undo işlemi için yeni bir log oluştur
	undoLog := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Geri alındı: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
		Undone:      true,
		IsUndone:    false,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("undo log kaydedilemedi: %w", err)
	}

	return nil
}

// deleteEntity - Entity'yi sil
func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case "slider":
		return database.DB.Delete(&models.Slider{}, "id = ?", entityID).Error
	case "cover":
		return database.DB.Delete(&models.Cover{}, "id = ?", entityID).Error
	case "article":
		return database.DB.Delete(&models.Article{}, "id = ?", entityID).Error
	case "product":
		return database.DB.Delete(&models.Product{}, "id = ?", entityID).Error
	case "brand":
		return database.DB.Delete(&models.Brand{}, "id = ?", entityID).Error
	case "certificate":
		return database.DB.Delete(&models.Certificate{}, "id = ?", entityID).Error
	case "badge":
		return database.DB.Delete(&models.Badge{}, "id = ?", entityID).Error
	case "project":
		return database.DB.Delete(&models.Project{}, "id = ?", entityID).Error
	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// recreateEntity - Silinen entity'yi geri oluştur
func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "slider":
		var slider models.Slider
		if err := json.Unmarshal([]byte(dataJSON), &slider); err != nil {
			return err
		}
		slider.ID = 0 // Yeni entity oluştur
		return database.DB.Create(&slider).Error

	case "cover":
		var cover models.Cover
		if err := json.Unmarshal([]byte(dataJSON), &cover); err != nil {
			return err
		}
		cover.ID = 0
		return database.DB.Create(&cover).Error

	case "article":
		var article models.Article
		if err := json.Unmarshal([]byte(dataJSON), &article); err != nil {
			return err
		}
		article.ID = 0
		return database.DB.Create(&article).Error

	case "product":
		var product models.Product
		if err := json.Unmarshal([]byte(dataJSON), &product); err != nil {
			return err
		}
		product.ID = 0
		// Sertifika/rozet atamaları junction tablolarında ayrı tutulur ve
		// silme ile kaybolur; geri oluşturma yalnızca ürün satırını getirir
		return database.DB.Create(&product).Error

	case "brand":
		var brand models.Brand
		if err := json.Unmarshal([]byte(dataJSON), &brand); err != nil {
			return err
		}
		brand.ID = 0
		return database.DB.Create(&brand).Error

	case "certificate":
		var cert models.Certificate
		if err := json.Unmarshal([]byte(dataJSON), &cert); err != nil {
			return err
		}
		cert.ID = 0
		return database.DB.Create(&cert).Error

	case "badge":
		var badge models.Badge
		if err := json.Unmarshal([]byte(dataJSON), &badge); err != nil {
			return err
		}
		badge.ID = 0
		return database.DB.Create(&badge).Error

	case "project":
		var project models.Project
		if err := json.Unmarshal([]byte(dataJSON), &project); err != nil {
			return err
		}
		project.ID = 0
		return database.DB.Create(&project).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}

// restoreEntity - Entity'yi önceki haline geri yükle (update)
func restoreEntity(entityType string, entityID uint, dataJSON string) error {
	switch entityType {
	case "slider":
		var slider models.Slider
		if err := json.Unmarshal([]byte(dataJSON), &slider); err != nil {
			return err
		}
		return database.DB.Model(&models.Slider{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"title":       slider.Title,
			"subtitle":    slider.Subtitle,
			"image_path":  slider.ImagePath,
			"link":        slider.Link,
			"is_active":   slider.IsActive,
			"order_index": slider.OrderIndex,
		}).Error

	case "cover":
		var cover models.Cover
		if err := json.Unmarshal([]byte(dataJSON), &cover); err != nil {
			return err
		}
		return database.DB.Model(&models.Cover{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"page_key":    cover.PageKey,
			"title":       cover.Title,
			"image_path":  cover.ImagePath,
			"order_index": cover.OrderIndex,
		}).Error

	case "article":
		var article models.Article
		if err := json.Unmarshal([]byte(dataJSON), &article); err != nil {
			return err
		}
		return database.DB.Model(&models.Article{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"title":        article.Title,
			"slug":         article.Slug,
			"summary":      article.Summary,
			"body":         article.Body,
			"image_path":   article.ImagePath,
			"is_active":    article.IsActive,
			"published_at": article.PublishedAt,
		}).Error

	case "product":
		var product models.Product
		if err := json.Unmarshal([]byte(dataJSON), &product); err != nil {
			return err
		}
		return database.DB.Model(&models.Product{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"brand_id":    product.BrandID,
			"name":        product.Name,
			"slug":        product.Slug,
			"description": product.Description,
			"image_path":  product.ImagePath,
			"is_premium":  product.IsPremium,
			"order_index": product.OrderIndex,
		}).Error

	case "brand":
		var brand models.Brand
		if err := json.Unmarshal([]byte(dataJSON), &brand); err != nil {
			return err
		}
		return database.DB.Model(&models.Brand{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":        brand.Name,
			"logo_path":   brand.LogoPath,
			"order_index": brand.OrderIndex,
		}).Error

	case "certificate":
		var cert models.Certificate
		if err := json.Unmarshal([]byte(dataJSON), &cert); err != nil {
			return err
		}
		return database.DB.Model(&models.Certificate{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"title":      cert.Title,
			"image_path": cert.ImagePath,
		}).Error

	case "badge":
		var badge models.Badge
		if err := json.Unmarshal([]byte(dataJSON), &badge); err != nil {
			return err
		}
		return database.DB.Model(&models.Badge{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"title": badge.Title,
			"icon":  badge.Icon,
		}).Error

	case "project":
		var project models.Project
		if err := json.Unmarshal([]byte(dataJSON), &project); err != nil {
			return err
		}
		return database.DB.Model(&models.Project{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"project_category_id": project.ProjectCategoryID,
			"title":               project.Title,
			"location":            project.Location,
			"description":         project.Description,
			"image_path":          project.ImagePath,
			"order_index":         project.OrderIndex,
		}).Error

	default:
		return fmt.Errorf("bilinmeyen entity tipi: %s", entityType)
	}
}
