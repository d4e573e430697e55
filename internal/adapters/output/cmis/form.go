package cmis

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
	"time"

	"ecm-connector/internal/domain"
)

// form collects the fields of a browser-binding cmisaction post.
type form struct {
	url.Values
}

func newForm(action string) *form {
	f := &form{Values: url.Values{}}
	f.Set("cmisaction", action)
	f.Set("succinct", "true")
	return f
}

// setProperties writes propertyId[i] / propertyValue[i] pairs, with
// propertyValue[i][j] for multi-valued properties. Keys are sorted.
func (f *form) setProperties(properties map[string]interface{}) {
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		f.Set(fmt.Sprintf("propertyId[%d]", i), key)
		switch values := properties[key].(type) {
		case []string:
			for j, v := range values {
				f.Set(fmt.Sprintf("propertyValue[%d][%d]", i, j), v)
			}
		case []interface{}:
			for j, v := range values {
				f.Set(fmt.Sprintf("propertyValue[%d][%d]", i, j), formatValue(v))
			}
		default:
			f.Set(fmt.Sprintf("propertyValue[%d]", i), formatValue(values))
		}
	}
}

func (f *form) setPolicies(policies []string) {
	for i, policy := range policies {
		f.Set(fmt.Sprintf("policy[%d]", i), policy)
	}
}

// setACEs writes <prefix>ACEPrincipal[i] and <prefix>ACEPermission[i][j].
func (f *form) setACEs(prefix string, aces []domain.ACE) {
	for i, ace := range aces {
		f.Set(fmt.Sprintf("%sACEPrincipal[%d]", prefix, i), ace.Principal)
		for j, permission := range ace.Permissions {
			f.Set(fmt.Sprintf("%sACEPermission[%d][%d]", prefix, i, j), permission)
		}
	}
}

// encode renders the form url-encoded, or as multipart when content is uploaded.
func (f *form) encode(content *domain.ContentStream) (io.Reader, string, error) {
	if content == nil {
		return strings.NewReader(f.Encode()), "application/x-www-form-urlencoded", nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(f.Values))
	for key := range f.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writer.WriteField(key, f.Get(key)); err != nil {
			return nil, "", err
		}
	}

	mimeType := content.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="content"; filename=%q`, content.FileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content.Data); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return fmt.Sprint(v.UnixMilli())
	case *time.Time:
		if v == nil {
			return ""
		}
		return fmt.Sprint(v.UnixMilli())
	default:
		return fmt.Sprint(v)
	}
}
