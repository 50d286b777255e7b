package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("go-garden:posts:hello-world")
	second := UUID("go-garden:posts:hello-world")
	if first != second {
		t.Fatalf("same key produced different ids: %s vs %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("expected a non-nil id")
	}
}

func TestUUIDEmptyKeyIsNil(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("blank key should map to uuid.Nil, got %s", got)
	}
}

func TestEntryUUIDNormalizesCase(t *testing.T) {
	lower := EntryUUID("posts", "hello-world")
	upper := EntryUUID("Posts", " Hello-World ")
	if lower != upper {
		t.Fatalf("case and whitespace should not change the id: %s vs %s", lower, upper)
	}
}

func TestEntryUUIDSeparatesCollections(t *testing.T) {
	post := EntryUUID("posts", "garden")
	project := EntryUUID("projects", "garden")
	if post == project {
		t.Fatal("same slug in different collections must not collide")
	}
}

func TestTagAndRouteUUIDsDiffer(t *testing.T) {
	tag := TagUUID("go")
	route := RouteUUID("/go")
	if tag == route {
		t.Fatal("tag and route namespaces must not collide")
	}
	if RouteUUID("blog") != RouteUUID("/blog/") {
		t.Fatal("route ids should ignore surrounding slashes")
	}
}
