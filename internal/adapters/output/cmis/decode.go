package cmis

import (
	"encoding/json"
	"fmt"
	"sort"

	"ecm-connector/internal/domain"

	"github.com/tidwall/gjson"
)

func parseRepositoryInfo(r gjson.Result) *domain.RepositoryInfo {
	capabilities, _ := r.Get("capabilities").Value().(map[string]interface{})
	return &domain.RepositoryInfo{
		ID:                r.Get("repositoryId").String(),
		Name:              r.Get("repositoryName").String(),
		Description:       r.Get("repositoryDescription").String(),
		VendorName:        r.Get("vendorName").String(),
		ProductName:       r.Get("productName").String(),
		ProductVersion:    r.Get("productVersion").String(),
		CMISVersion:       r.Get("cmisVersionSupported").String(),
		RootFolderID:      r.Get("rootFolderId").String(),
		RepositoryURL:     r.Get("repositoryUrl").String(),
		RootFolderURL:     r.Get("rootFolderUrl").String(),
		Capabilities:      capabilities,
		LatestChangeToken: r.Get("latestChangeLogToken").String(),
	}
}

// parseObject reads an object in succinct form, falling back to the
// verbose properties block.
func parseObject(r gjson.Result) *domain.CMISObject {
	properties := propertyMap(r.Get("succinctProperties"))
	if len(properties) == 0 {
		r.Get("properties").ForEach(func(key, value gjson.Result) bool {
			properties[key.String()] = value.Get("value").Value()
			return true
		})
	}

	actions := []string{}
	r.Get("allowableActions").ForEach(func(key, value gjson.Result) bool {
		if value.Bool() {
			actions = append(actions, key.String())
		}
		return true
	})
	sort.Strings(actions)

	obj := &domain.CMISObject{Properties: properties, Actions: actions}
	obj.ID = obj.String(domain.CMISPropObjectID)
	obj.Name = obj.String(domain.CMISPropName)
	obj.BaseTypeID = obj.String(domain.CMISPropBaseTypeID)
	obj.ObjectTypeID = obj.String(domain.CMISPropObjectTypeID)
	obj.Path = obj.String(domain.CMISPropPath)
	return obj
}

func propertyMap(r gjson.Result) map[string]interface{} {
	if m, ok := r.Value().(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func parseACL(r gjson.Result) *domain.ACL {
	acl := &domain.ACL{
		ACEs:    []domain.ACE{},
		IsExact: r.Get("isExact").Bool(),
	}
	r.Get("aces").ForEach(func(_, value gjson.Result) bool {
		ace := domain.ACE{
			Principal:   value.Get("principal.principalId").String(),
			Permissions: []string{},
			IsDirect:    value.Get("isDirect").Bool(),
		}
		value.Get("permissions").ForEach(func(_, permission gjson.Result) bool {
			ace.Permissions = append(ace.Permissions, permission.String())
			return true
		})
		acl.ACEs = append(acl.ACEs, ace)
		return true
	})
	return acl
}

func parseTypeDefinition(r gjson.Result) *domain.TypeDefinition {
	var definition domain.TypeDefinition
	if err := json.Unmarshal([]byte(r.Raw), &definition); err != nil {
		return &domain.TypeDefinition{ID: r.Get("id").String()}
	}
	return &definition
}

func encodeTypeDefinition(definition domain.TypeDefinition) (string, error) {
	if definition.ID == "" || definition.BaseID == "" {
		return "", fmt.Errorf("%w: type definition needs id and baseId", domain.ErrInvalidRequest)
	}
	data, err := json.Marshal(definition)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// objectID extracts the id of the object a cmisaction returned.
func objectID(data []byte) string {
	if id := gjson.GetBytes(data, "succinctProperties.cmis:objectId"); id.Exists() {
		return id.String()
	}
	return gjson.GetBytes(data, "properties.cmis:objectId.value").String()
}
