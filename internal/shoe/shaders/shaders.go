// Package shaders holds the GLSL sources for the shoe shading paths.
// One shared vertex shader feeds four fragment shaders: the standard
// physically-based path and the three custom finishes (anisotropic,
// iridescent, subsurface).
package shaders

// VertexSource transforms shoe vertices and hands the fragment stage a
// world-space position, normal, tangent frame and UV.
const VertexSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aTangent;
layout (location = 3) in vec3 aBitangent;
layout (location = 4) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vTangent;
out vec3 vBitangent;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uModel) * aNormal;
    vTangent = mat3(uModel) * aTangent;
    vBitangent = mat3(uModel) * aBitangent;
    vTexCoord = aTexCoord;
    gl_Position = uProjection * uView * world;
}
`

// StandardSource shades with the preset-driven physically-based path:
// Lambert diffuse plus a roughness-narrowed specular lobe per light,
// with clearcoat and sheen terms layered on top.
const StandardSource = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uBaseColor;
uniform float uRoughness;
uniform float uMetalness;
uniform float uClearcoat;
uniform float uSheen;
uniform float uOpacity;
uniform vec3 uViewPosition;

uniform int uLightCount;
uniform vec3 uLightPositions[8];
uniform vec3 uLightColors[8];
uniform float uLightIntensities[8];
uniform float uLightRanges[8];

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 v = normalize(uViewPosition - vWorldPos);

    float shininess = mix(256.0, 4.0, uRoughness);
    vec3 specTint = mix(vec3(0.04), uBaseColor, uMetalness);
    vec3 diffColor = uBaseColor * (1.0 - uMetalness);

    vec3 color = diffColor * 0.12;
    for (int i = 0; i < uLightCount; i++) {
        vec3 toLight = uLightPositions[i] - vWorldPos;
        float dist = length(toLight);
        vec3 l = toLight / max(dist, 0.0001);
        float atten = uLightIntensities[i] * clamp(1.0 - dist / uLightRanges[i], 0.0, 1.0);

        float diff = max(dot(n, l), 0.0);
        vec3 h = normalize(l + v);
        float spec = pow(max(dot(n, h), 0.0), shininess);
        float coat = uClearcoat * pow(max(dot(n, h), 0.0), 512.0);

        color += atten * uLightColors[i] * (diffColor * diff + specTint * spec + vec3(coat));
    }

    float rim = pow(1.0 - max(dot(n, v), 0.0), 2.5);
    color += uSheen * rim * diffColor;

    FragColor = vec4(color, uOpacity);
}
`

// AnisotropicSource shades brushed finishes. The tangent basis is
// rebuilt from the shading normal with a branch for the degenerate
// normal near (0, 0, -1), rotated by uRotation, then fed into an
// anisotropic GGX distribution with separate roughness per axis. The
// specular term is clamped, and a NaN in the basis drops the fragment
// to a flat half-lit base color instead of propagating.
const AnisotropicSource = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uBaseColor;
uniform float uRoughnessX;
uniform float uRoughnessY;
uniform float uRotation;
uniform float uOpacity;
uniform vec3 uLightPosition;
uniform vec3 uViewPosition;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);

    vec3 t;
    vec3 b;
    if (n.z < -0.999999) {
        t = vec3(0.0, -1.0, 0.0);
        b = vec3(-1.0, 0.0, 0.0);
    } else {
        float a = 1.0 / (1.0 + n.z);
        float c = -n.x * n.y * a;
        t = vec3(1.0 - n.x * n.x * a, c, -n.x);
        b = vec3(c, 1.0 - n.y * n.y * a, -n.y);
    }

    float cr = cos(uRotation);
    float sr = sin(uRotation);
    vec3 tr = normalize(t * cr + b * sr);
    vec3 br = normalize(b * cr - t * sr);

    vec3 l = normalize(uLightPosition - vWorldPos);
    vec3 v = normalize(uViewPosition - vWorldPos);
    vec3 h = normalize(l + v);

    float ax = max(uRoughnessX * uRoughnessX, 0.001);
    float ay = max(uRoughnessY * uRoughnessY, 0.001);
    float th = dot(tr, h);
    float bh = dot(br, h);
    float nh = max(dot(n, h), 0.0);

    float denom = th * th / (ax * ax) + bh * bh / (ay * ay) + nh * nh;
    float dist = 1.0 / (3.14159265 * ax * ay * denom * denom);
    float spec = clamp(dist * 0.25, 0.0, 4.0);

    float diff = max(dot(n, l), 0.0);
    vec3 color = uBaseColor * (0.15 + 0.85 * diff) + vec3(spec * diff);

    if (any(isnan(tr)) || any(isnan(color))) {
        color = uBaseColor * 0.5;
    }

    FragColor = vec4(color, uOpacity);
}
`

// IridescentSource shades the glint finish: a cubed Fresnel term
// drives a hue rotation across the view angle and the U coordinate,
// blended over the base color, with a metallic brightness boost at
// grazing angles.
const IridescentSource = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uBaseColor;
uniform float uScale;
uniform float uMetalness;
uniform float uRoughness;
uniform float uOpacity;
uniform vec3 uLightPosition;
uniform vec3 uViewPosition;

out vec4 FragColor;

vec3 hsv2rgb(vec3 c) {
    vec3 p = abs(fract(c.xxx + vec3(0.0, 2.0 / 3.0, 1.0 / 3.0)) * 6.0 - 3.0);
    return c.z * mix(vec3(1.0), clamp(p - 1.0, 0.0, 1.0), c.y);
}

void main() {
    vec3 n = normalize(vNormal);
    vec3 v = normalize(uViewPosition - vWorldPos);
    vec3 l = normalize(uLightPosition - vWorldPos);

    float fresnel = pow(1.0 - max(dot(v, n), 0.0), 3.0);
    float hue = fract(fresnel * uScale + vTexCoord.x);
    vec3 shifted = hsv2rgb(vec3(hue, 0.75, 1.0));

    float diff = max(dot(n, l), 0.0);
    vec3 base = uBaseColor * (0.2 + 0.8 * diff);

    vec3 color = mix(base, shifted, fresnel * uMetalness);
    color += vec3(fresnel * uMetalness * 0.45);

    vec3 h = normalize(l + v);
    float spec = pow(max(dot(n, h), 0.0), mix(512.0, 16.0, uRoughness));
    color += vec3(spec * uMetalness);

    FragColor = vec4(color, uOpacity);
}
`

// SubsurfaceSource shades the nubuck finish: the light direction is
// perturbed along the surface normal by a distortion factor to fake
// transmitted light, attenuated exponentially by thickness, and added
// to an ordinary Lambert term.
const SubsurfaceSource = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform vec3 uBaseColor;
uniform float uPower;
uniform float uThickness;
uniform float uDistortion;
uniform float uOpacity;
uniform vec3 uLightPosition;
uniform vec3 uViewPosition;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 l = normalize(uLightPosition - vWorldPos);
    vec3 v = normalize(uViewPosition - vWorldPos);

    vec3 lt = normalize(l + n * uDistortion);
    float backlit = pow(clamp(dot(v, -lt), 0.0, 1.0), uPower);
    float trans = backlit * exp(-uThickness * 3.0);

    float diff = max(dot(n, l), 0.0);
    vec3 color = uBaseColor * (0.1 + 0.9 * diff) + uBaseColor * trans;

    FragColor = vec4(color, uOpacity);
}
`

// FragmentFor returns the fragment source for a shading path name as
// reported by the material kind.
func FragmentFor(kind string) string {
	switch kind {
	case "anisotropic":
		return AnisotropicSource
	case "iridescent":
		return IridescentSource
	case "subsurface":
		return SubsurfaceSource
	default:
		return StandardSource
	}
}
